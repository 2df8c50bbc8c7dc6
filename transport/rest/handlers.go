package rest

import (
	"encoding/json"
	"net/http"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	StatsHandler(w http.ResponseWriter, _ *http.Request)
}

type roomStats interface {
	Len() int
}

type handlers struct {
	rooms roomStats
}

func NewHandlers(rooms roomStats) Handlers {
	return &handlers{
		rooms: rooms,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) StatsHandler(w http.ResponseWriter, _ *http.Request) {
	stats := struct {
		Rooms int `json:"rooms"`
	}{
		Rooms: that.rooms.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
