package scoreboard

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// Number is free text so non-numeric jersey labels ("00", "T") survive.
	Number string `json:"number"`
}

type Team struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	Players        []Player  `json:"players"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
