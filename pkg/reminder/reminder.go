// Package reminder schedules recurring reminder emails for workflows stuck
// awaiting manager approval.
package reminder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/robfig/cron/v3"
)

// ErrReminderNotFound indicates no reminder is scheduled for the workflow.
var ErrReminderNotFound = errors.New("reminder not found")

// Reminder describes one scheduled reminder.
type Reminder struct {
	WorkflowID string        `json:"workflow_id"`
	To         string        `json:"to"`
	Subject    string        `json:"subject"`
	Interval   time.Duration `json:"interval"`
	NextRun    time.Time     `json:"next_run"`
}

// Sender delivers a reminder. The default implementation only logs; a real
// mail gateway plugs in here.
type Sender interface {
	Send(reminder Reminder) error
}

// LogSender writes reminders to the log instead of sending mail.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(reminder Reminder) error {
	s.logger.Info("Sending approval reminder",
		"workflow_id", reminder.WorkflowID,
		"to", reminder.To,
		"subject", reminder.Subject,
	)

	return nil
}

// Scheduler manages one recurring reminder per workflow.
type Scheduler struct {
	cron   *cron.Cron
	sender Sender
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func NewScheduler(sender Sender, logger *slog.Logger) *Scheduler {
	c := cron.New()
	c.Start()

	return &Scheduler{
		cron:    c,
		sender:  sender,
		logger:  logger,
		entries: make(map[string]cron.EntryID),
	}
}

// Schedule registers a recurring reminder for the workflow's approval email.
// Scheduling again for the same workflow replaces the previous reminder.
func (s *Scheduler) Schedule(workflowID string, email models.ApprovalEmail, interval time.Duration) (Reminder, error) {
	if interval <= 0 {
		return Reminder{}, fmt.Errorf("invalid reminder interval: %s", interval)
	}

	reminder := Reminder{
		WorkflowID: workflowID,
		To:         email.ManagerEmail,
		Subject:    "REMINDER: " + email.Subject,
		Interval:   interval,
		NextRun:    time.Now().Add(interval),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.entries[workflowID]; ok {
		s.cron.Remove(entryID)
	}

	entryID := s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() {
		if err := s.sender.Send(reminder); err != nil {
			s.logger.Error("Failed to send reminder",
				"workflow_id", workflowID,
				"error", err,
			)
		}
	}))

	s.entries[workflowID] = entryID
	s.logger.Info("Reminder scheduled",
		"workflow_id", workflowID,
		"interval", interval,
	)

	return reminder, nil
}

// Cancel removes the workflow's reminder, typically once the manager decides.
func (s *Scheduler) Cancel(workflowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.entries[workflowID]
	if !ok {
		return fmt.Errorf("cancel reminder for %s: %w", workflowID, ErrReminderNotFound)
	}

	s.cron.Remove(entryID)
	delete(s.entries, workflowID)

	return nil
}

// Scheduled reports whether a reminder is active for the workflow.
func (s *Scheduler) Scheduled(workflowID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[workflowID]

	return ok
}

// Stop halts the underlying cron runner and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
