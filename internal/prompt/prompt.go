// Package prompt implements the staged input collection that precedes a
// batch run: day selection, shared payload fields, then confirmation. Each
// stage validates before the next one starts, so an invalid field never
// reaches the submitter.
package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rozsival/tyr-worklog-creator/internal/batch"
	"github.com/rozsival/tyr-worklog-creator/internal/calendar"
)

var (
	colorAccent = lipgloss.Color("208")
	colorDim    = lipgloss.Color("243")
)

// tyrTheme returns a huh theme with an orange accent for focused fields.
func tyrTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)

	return t
}

// SelectDays shows one multi-select per week group, every day preselected,
// and returns the retained days in their original ascending order. An empty
// selection is returned as-is; the caller decides to exit early.
func SelectDays(groups []calendar.WeekGroup) ([]calendar.WorkDay, error) {
	selections := make([][]calendar.WorkDay, len(groups))

	formGroups := make([]*huh.Group, 0, len(groups))
	for i, group := range groups {
		options := make([]huh.Option[calendar.WorkDay], 0, len(group))
		for _, day := range group {
			label := day.Format("Mon 2006-01-02")
			options = append(options, huh.NewOption(label, day).Selected(true))
		}

		formGroups = append(formGroups, huh.NewGroup(
			huh.NewMultiSelect[calendar.WorkDay]().
				Title(fmt.Sprintf("Week of %s", group[0].Format("Jan 2"))).
				Options(options...).
				Value(&selections[i]),
		))
	}

	if err := huh.NewForm(formGroups...).WithTheme(tyrTheme()).Run(); err != nil {
		return nil, err
	}

	// Rebuild from the group order so the resolver's ordering survives
	// whatever order the form reports selections in.
	picked := make(map[calendar.WorkDay]bool)
	for _, sel := range selections {
		for _, day := range sel {
			picked[day] = true
		}
	}

	var days []calendar.WorkDay
	for _, group := range groups {
		for _, day := range group {
			if picked[day] {
				days = append(days, day)
			}
		}
	}

	return days, nil
}

// CollectPayload prompts for the shared batch fields in validation order:
// comment, time spent, project, ticket. Every field is required; the form
// re-prompts until its validator passes.
func CollectPayload(defaults batch.Payload) (batch.Payload, error) {
	payload := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Comment").
				Placeholder("What did you work on?").
				Value(&payload.Comment).
				Validate(notEmpty("comment")),
			huh.NewInput().
				Title("Time spent").
				Placeholder("8h").
				Value(&payload.TimeSpent).
				Validate(notEmpty("time spent")),
			huh.NewInput().
				Title("Project").
				Value(&payload.Project).
				Validate(notEmpty("project")),
			huh.NewInput().
				Title("Ticket").
				Value(&payload.Ticket).
				Validate(notEmpty("ticket")),
		),
	).WithTheme(tyrTheme())

	if err := form.Run(); err != nil {
		return batch.Payload{}, err
	}

	return payload, nil
}

// Confirm asks for the final go-ahead before any mutation is issued.
// Declining is the last abort point: once the batch starts there is no
// cancellation.
func Confirm(days []calendar.WorkDay, payload batch.Payload) (bool, error) {
	confirmed := false

	description := fmt.Sprintf("%d worklog(s) of %s on %s for %s",
		len(days), payload.TimeSpent, payload.Ticket, payload.Project)
	if len(days) > 0 {
		description = fmt.Sprintf("%s (%s .. %s)",
			description,
			days[0].Format("2006-01-02"),
			days[len(days)-1].Format("2006-01-02"))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create worklogs?").
				Description(description).
				Affirmative("Create").
				Negative("Abort").
				Value(&confirmed),
		),
	).WithTheme(tyrTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
