package request

// TileRequest is one square of a placement. An empty letter marks a square
// already on the board that the play runs through.
type TileRequest struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter,omitempty"`
	Blank  bool   `json:"blank,omitempty"`
}

// PlacementRequest is the request body for scoring or placing tiles
type PlacementRequest struct {
	Tiles []TileRequest `json:"tiles"`
}

// RackRequest is the request body for move search endpoints
type RackRequest struct {
	Rack string `json:"rack"`
}

// BotPlayRequest is the request body for letting a bot play a rack
type BotPlayRequest struct {
	Rack     string `json:"rack"`
	Strategy string `json:"strategy,omitempty"`
}

// ApplyLayoutRequest is the request body for switching the board layout
type ApplyLayoutRequest struct {
	Name string `json:"name"`
}
