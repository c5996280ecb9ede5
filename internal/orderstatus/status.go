// Package orderstatus holds the order lifecycle rules the desk enforces
// before asking the backend to move an order.
package orderstatus

import (
	"crypto/subtle"

	"github.com/rookgm/storedesk/internal/models"
)

// transition is one edge of the lifecycle graph
type transition struct {
	to          models.OrderStatus
	kind        models.ActionKind
	label       string
	requiresOTP bool
}

var (
	toProcessing = transition{to: models.OrderStatusProcessing, kind: models.ActionProcess, label: "Process"}
	toDelivered  = transition{to: models.OrderStatusDelivered, kind: models.ActionDeliver, label: "Deliver", requiresOTP: true}
	toCancelled  = transition{to: models.OrderStatusCancelled, kind: models.ActionCancel, label: "Cancel"}
	toReturned   = transition{to: models.OrderStatusReturned, kind: models.ActionReturn, label: "Return"}
)

// retailTransitions applies to generic retail stores
var retailTransitions = map[models.OrderStatus][]transition{
	models.OrderStatusPending:    {toProcessing, toCancelled},
	models.OrderStatusConfirmed:  {toProcessing, toCancelled},
	models.OrderStatusProcessing: {toDelivered, toCancelled},
	models.OrderStatusShipped:    {toDelivered},
	models.OrderStatusDelivered:  {toReturned},
	models.OrderStatusCancelled:  nil,
	models.OrderStatusReturned:   nil,
}

// restaurantTransitions applies to restaurant and hotel stores
var restaurantTransitions = map[models.OrderStatus][]transition{
	models.OrderStatusPending:    {toProcessing, toCancelled},
	models.OrderStatusConfirmed:  nil,
	models.OrderStatusProcessing: {toDelivered, toCancelled},
	models.OrderStatusShipped:    nil,
	models.OrderStatusDelivered:  nil,
	models.OrderStatusCancelled:  nil,
	models.OrderStatusReturned:   nil,
}

func table(category string) map[models.OrderStatus][]transition {
	if models.IsRestaurant(category) {
		return restaurantTransitions
	}
	return retailTransitions
}

// IsKnown reports whether status is part of the lifecycle
func IsKnown(status models.OrderStatus) bool {
	_, ok := retailTransitions[status]
	return ok
}

// IsTerminal reports whether order in status may no longer be cancelled.
// Delivered is terminal although it still allows a return.
func IsTerminal(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusDelivered, models.OrderStatusCancelled, models.OrderStatusReturned:
		return true
	}
	return false
}

// Transitions returns statuses reachable from status for store category
func Transitions(from models.OrderStatus, category string) []models.OrderStatus {
	edges := table(category)[from]
	next := make([]models.OrderStatus, 0, len(edges))
	for _, e := range edges {
		next = append(next, e.to)
	}
	return next
}

// AvailableActions returns actions operator may take on order, in display order.
// Unknown status yields empty list.
func AvailableActions(order *models.Order, category string) []models.Action {
	status := models.ParseOrderStatus(string(order.Status))
	edges := table(category)[status]

	actions := make([]models.Action, 0, len(edges))
	for _, e := range edges {
		if e.kind == models.ActionCancel && IsTerminal(status) {
			continue
		}
		actions = append(actions, models.Action{
			Kind:         e.kind,
			Label:        e.label,
			TargetStatus: e.to,
			RequiresOTP:  e.requiresOTP,
			Enabled:      true,
		})
	}
	return actions
}

// RequiresOTP reports whether moving order from one status to another needs OTP
func RequiresOTP(from, to models.OrderStatus) bool {
	return to == models.OrderStatusDelivered &&
		(from == models.OrderStatusProcessing || from == models.OrderStatusShipped)
}

// CheckTransition checks that order may move to status "to".
// otp is operator input, only consulted for OTP gated transitions.
func CheckTransition(order *models.Order, to models.OrderStatus, category, otp string) error {
	from := models.ParseOrderStatus(string(order.Status))
	if !IsKnown(from) || !IsKnown(to) {
		return models.ErrUnknownStatus
	}

	allowed := false
	for _, next := range Transitions(from, category) {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.ErrTransitionNotAllowed
	}

	if RequiresOTP(from, to) {
		return VerifyOTP(order.OTP, otp)
	}
	return nil
}

// VerifyOTP compares operator entered OTP with order OTP
func VerifyOTP(want, got string) error {
	if got == "" {
		return models.ErrOTPRequired
	}
	if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		return models.ErrOTPMismatch
	}
	return nil
}
