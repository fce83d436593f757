package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func (m *Menu) recordWeight(ctx context.Context) error {
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		fmt.Fprint(m.out, "Weight (in KG): ")
		line, err := m.readLine()
		if err != nil {
			return err
		}
		v, err := parseWeight(line)
		if err != nil {
			m.logger.Debug("rejected weight", zap.String("input", line), zap.Int("attempt", attempt))
			fmt.Fprintln(m.out, "Invalid weight. Please enter a number.")
			continue
		}
		entry, err := m.weight.RecordWeight(ctx, m.user, v)
		if err != nil {
			return err
		}
		m.logger.Info("weight recorded", zap.String("user", m.user), zap.String("day", entry.DayString()), zap.Float64("value", entry.Value))
		return nil
	}
	return ErrTooManyAttempts
}

// selectWindow asks until one of app.Windows is chosen.
func (m *Menu) selectWindow() (int, error) {
	for {
		fmt.Fprintln(m.out, "Select time period")
		for i, d := range app.Windows {
			fmt.Fprintf(m.out, "%d. %d days\n", i+1, d)
		}
		fmt.Fprint(m.out, "Enter your choice: ")
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		if days, ok := windowForChoice(line); ok {
			return days, nil
		}
		fmt.Fprintf(m.out, "Invalid choice. Please select from 1 to %d.\n", len(app.Windows))
	}
}

func (m *Menu) viewHistory(ctx context.Context) error {
	days, err := m.selectWindow()
	if err != nil {
		return err
	}
	h, err := m.charts.RenderHistory(ctx, m.user, days)
	switch {
	case errors.Is(err, app.ErrChartNotSaved):
		m.logger.Warn("chart not saved", zap.String("path", m.charts.Path()), zap.Error(err))
		fmt.Fprintf(m.out, "Could not save chart: %v\n", err)
	case err != nil:
		return err
	}
	return writeTable(m.out, h.Entries)
}

func (m *Menu) setGoal(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, "What is your desired weight(in KG)? ")
		line, err := m.readLine()
		if err != nil {
			return err
		}
		v, err := parseWeight(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid weight. Please enter a positive number.")
			continue
		}
		return m.goals.SetGoal(ctx, m.user, v)
	}
}

func (m *Menu) viewGoal(ctx context.Context) error {
	r, err := m.goals.ViewGoal(ctx, m.user)
	switch {
	case errors.Is(err, domain.ErrGoalNotSet):
		fmt.Fprintln(m.out, "Goal weight not set.")
		return nil
	case errors.Is(err, domain.ErrGoalInvalid):
		fmt.Fprintln(m.out, "Invalid goal weight.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(m.out, "Your goal weight is: %s kg\n", formatNumber(r.Goal))
	switch r.Projection.Status {
	case app.InsufficientData:
		fmt.Fprintln(m.out, "Not enough data to calculate the expected days to reach goal.")
	case app.NotLosing:
		fmt.Fprintln(m.out, "You're not losing weight on average. Keep trying!")
	case app.Estimated:
		fmt.Fprintf(m.out, "Estimated days to reach goal: %s\n", formatNumber(r.Projection.DaysRemaining))
	}
	return nil
}
