package finbook

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notifier delivers alerts to the user. Delivery is best-effort: callers
// log failures and move on, they never propagate them.
type Notifier interface {
	BudgetAlert(alert BudgetAlert) error
	PaymentReminder(reminder PaymentReminder) error
}

// LogNotifier writes notifications to the structured log. It is the default
// sink when no platform notification channel is wired in.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) BudgetAlert(alert BudgetAlert) error {
	n.Log.Info().
		Str("budget", alert.BudgetID.String()).
		Str("category", alert.Category.String()).
		Str("spent", alert.Spent.String()).
		Float64("ratio", alert.Ratio).
		Msg("budget alert")
	return nil
}

func (n LogNotifier) PaymentReminder(reminder PaymentReminder) error {
	n.Log.Info().
		Str("title", reminder.Title).
		Str("due", reminder.DueDate.String()).
		Str("amount", reminder.Amount.String()).
		Msg("payment reminder")
	return nil
}

// RefreshBudgetAlerts fires a notification for every approaching budget
// whose notification toggle is on. This is the only place the toggle is
// consulted; ApproachingBudgets itself reports all of them.
func RefreshBudgetAlerts(s *Snapshot, n Notifier, threshold float64) {
	byID := make(map[uuid.UUID]Budget, len(s.Budgets))
	for _, b := range s.Budgets {
		byID[b.ID] = b
	}
	for _, alert := range ApproachingBudgets(s, threshold) {
		b, ok := byID[alert.BudgetID]
		if !ok || !b.Notify {
			continue
		}
		if err := n.BudgetAlert(alert); err != nil {
			log.Warn().Err(err).Str("budget", alert.BudgetID.String()).Msg("could not deliver budget alert")
		}
	}
}

// DueReminders returns the reminders due within the given number of days
// from now, today included.
func DueReminders(s *Snapshot, now Date, withinDays int) []PaymentReminder {
	horizon := now.Add(withinDays)
	var out []PaymentReminder
	for _, r := range s.Reminders {
		if !r.DueDate.Before(now) && !r.DueDate.After(horizon) {
			out = append(out, r)
		}
	}
	return out
}

// SendReminders delivers every reminder due within the horizon.
func SendReminders(s *Snapshot, n Notifier, now Date, withinDays int) {
	for _, r := range DueReminders(s, now, withinDays) {
		if err := n.PaymentReminder(r); err != nil {
			log.Warn().Err(err).Str("reminder", r.Title).Msg("could not deliver payment reminder")
		}
	}
}
