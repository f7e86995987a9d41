package estimate

// GenerateEstimateRequest is the request body for generating an estimate
// from a batch of spoken or typed task descriptions.
type GenerateEstimateRequest struct {
	Utterances []string    `json:"utterances" validate:"required,min=1,max=50,dive,required,max=500"`
	Room       RoomRequest `json:"room" validate:"required"`
}

// RoomRequest carries the room dimensions in meters plus opening counts.
type RoomRequest struct {
	Width   float64 `json:"width" validate:"required,gt=0"`
	Length  float64 `json:"length" validate:"required,gt=0"`
	Height  float64 `json:"height" validate:"required,gt=0"`
	Doors   int     `json:"doors" validate:"min=0"`
	Windows int     `json:"windows" validate:"min=0"`
}

// Geometry converts the request shape to the domain geometry.
func (r RoomRequest) Geometry() RoomGeometry {
	return RoomGeometry{
		Width:   r.Width,
		Length:  r.Length,
		Height:  r.Height,
		Doors:   r.Doors,
		Windows: r.Windows,
	}
}
