package apinba

import "encoding/json"

type envelope struct {
	Errors  json.RawMessage `json:"errors"`
	Results int             `json:"results"`
}

type gamesResponse struct {
	envelope
	Response []gameResponse `json:"response"`
}

type gameResponse struct {
	ID     int            `json:"id"`
	Teams  teamsResponse  `json:"teams"`
	Scores scoresResponse `json:"scores"`
}

type teamsResponse struct {
	Home     teamResponse `json:"home"`
	Visitors teamResponse `json:"visitors"`
}

type teamResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Code     string `json:"code"`
}

type scoresResponse struct {
	Home     scoreResponse `json:"home"`
	Visitors scoreResponse `json:"visitors"`
}

type scoreResponse struct {
	Points *int `json:"points"`
}

type statsResponse struct {
	envelope
	Response []playerStatResponse `json:"response"`
}

type playerStatResponse struct {
	Player  playerResponse `json:"player"`
	Points  *int           `json:"points"`
	Assists *int           `json:"assists"`
	TotReb  *int           `json:"totReb"`
	Steals  *int           `json:"steals"`
	Blocks  *int           `json:"blocks"`
}

type playerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}
