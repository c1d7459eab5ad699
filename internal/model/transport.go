package model

// TransportCapacity is one transport mode's capacity on a tile.
type TransportCapacity struct {
	ID              string        `json:"id"`
	TileID          string        `json:"tile_id"`
	Type            TransportType `json:"type"`
	Level           int           `json:"level"`
	MaxCapacity     float64       `json:"max_capacity"`
	UsedCapacity    float64       `json:"used_capacity"`
	Efficiency      float64       `json:"efficiency"`
	MaintenanceCost float64       `json:"maintenance_cost"`
}

// TileTransportCapacity aggregates every transport mode on a tile.
type TileTransportCapacity struct {
	TileID            string                               `json:"tile_id"`
	Capacities        map[TransportType]*TransportCapacity `json:"capacities"`
	TotalCapacity     float64                              `json:"total_capacity"`
	UsedCapacity      float64                              `json:"used_capacity"`
	AvailableCapacity float64                              `json:"available_capacity"`
	Efficiency        float64                              `json:"efficiency"`
}
