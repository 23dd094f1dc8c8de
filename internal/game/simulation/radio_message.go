package simulation

import (
	"radar-atc/pkg/types"
)

type RadioMessage struct {
	Time     float64        `json:"time" msgpack:"time"` // simulation seconds
	Callsign types.Callsign `json:"callsign" msgpack:"callsign"`
	Message  string         `json:"message" msgpack:"message"`
	IsUrgent bool           `json:"urgent" msgpack:"urgent"`
}

func (s *Simulation) AddRadioMessage(callsign types.Callsign, message string, isUrgent bool) {
	msg := RadioMessage{
		Time:     s.GameTimeSeconds,
		Callsign: callsign,
		Message:  message,
		IsUrgent: isUrgent,
	}
	s.RadioLog = append(s.RadioLog, msg)

	if len(s.RadioLog) > s.maxRadioLogSize {
		s.RadioLog = s.RadioLog[len(s.RadioLog)-s.maxRadioLogSize:]
	}
}

// Transmit records a controller readback.
func (s *Simulation) Transmit(callsign types.Callsign, message string) {
	s.AddRadioMessage(callsign, message, false)
}
