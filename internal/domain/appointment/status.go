package appointment

import (
	"time"

	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Actors
// ===============================

// Actor identifies who is asking for a transition. ActorClient is only
// meaningful for the client owning the appointment; ownership is checked
// by the caller before the transition is attempted.
type Actor string

const (
	ActorAdmin  Actor = "admin"
	ActorClient Actor = "client"
	ActorSystem Actor = "system"
)

// ===============================
// Transition graph
// ===============================

var transitions = map[Status]map[Status][]Actor{
	StatusPending: {
		StatusConfirmed: {ActorAdmin},
		StatusCancelled: {ActorAdmin, ActorClient},
	},
	StatusConfirmed: {
		StatusInProgress: {ActorAdmin, ActorSystem},
		StatusCancelled:  {ActorAdmin, ActorClient},
	},
	StatusInProgress: {
		StatusCompleted: {ActorAdmin},
		StatusCancelled: {ActorAdmin, ActorClient},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition checks the transition graph and the role allowed to walk
// each edge. The rules hold for every caller, including the background
// monitor; they are never a presentation concern only.
func CanTransition(from, to Status, actor Actor) error {
	allowed, ok := transitions[from]
	if !ok {
		return httperr.ErrBusiness("invalid_status")
	}

	actors, ok := allowed[to]
	if !ok {
		return httperr.ErrBusiness("invalid_transition")
	}

	for _, a := range actors {
		if a == actor {
			return nil
		}
	}
	return httperr.ErrBusiness("transition_forbidden")
}

// Transition applies a validated status change and stamps the
// terminal-state timestamps.
func Transition(ap *models.Appointment, to Status, actor Actor, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to, actor); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
