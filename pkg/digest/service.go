package digest

import (
	"errors"
	"fmt"
	"time"

	"gardenplan/entities"
	"gardenplan/pkg/mail"
	plantrepo "gardenplan/pkg/planting/repository"
	seedrepo "gardenplan/pkg/seed/repository"
	taskrepo "gardenplan/pkg/task/repository"
)

const dayLayout = "2006-01-02"

// Svc builds and sends the two notification mails: the weekly digest
// and the single-task reminder. Both only read already-persisted
// due dates; neither calls into the scheduling core.
type Svc struct {
	tasks       taskrepo.TaskRepository
	plantings   plantrepo.PlantingRepository
	seeds       seedrepo.SeedRepository
	mailer      mail.Client
	horizonDays int
}

func New(t taskrepo.TaskRepository, p plantrepo.PlantingRepository, s seedrepo.SeedRepository, m mail.Client, horizonDays int) *Svc {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	return &Svc{tasks: t, plantings: p, seeds: s, mailer: m, horizonDays: horizonDays}
}

func (s *Svc) lineFor(t *entities.Task) Line {
	l := Line{Action: ActionLabel(t.Type), Crop: "your planting"}
	if t.DueDate != nil {
		l.DueDate = *t.DueDate
	}
	if p, err := s.plantings.FindByID(t.PlantingID); err == nil {
		if sd, err := s.seeds.FindAny(p.SeedID); err == nil {
			l.Crop = sd.Name
			if sd.Variety != "" {
				l.Crop = fmt.Sprintf("%s (%s)", sd.Name, sd.Variety)
			}
		}
	}
	return l
}

// SendWeekly mails every pending task due within the horizon to the
// given address. Returns the number of tasks included.
func (s *Svc) SendWeekly(uid, email string, now time.Time) (int, error) {
	from := now.Format(dayLayout)
	to := now.AddDate(0, 0, s.horizonDays).Format(dayLayout)
	tasks, err := s.tasks.ListPendingByUser(uid, from, to)
	if err != nil {
		return 0, err
	}
	lines := make([]Line, 0, len(tasks))
	for i := range tasks {
		lines = append(lines, s.lineFor(&tasks[i]))
	}
	body, err := RenderWeekly(lines)
	if err != nil {
		return 0, err
	}
	subject := fmt.Sprintf("Garden digest: %d task(s) due by %s", len(lines), to)
	if err := s.mailer.Send(email, subject, body); err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (s *Svc) SendTaskReminder(taskID uint, email string) error {
	t, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if t.Status != "pending" {
		return errors.New("task is not pending")
	}
	l := s.lineFor(t)
	body, err := RenderReminder(l)
	if err != nil {
		return err
	}
	return s.mailer.Send(email, fmt.Sprintf("Reminder: %s %s", l.Action, l.Crop), body)
}
