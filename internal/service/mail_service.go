package service

import (
	"fmt"
	"io"

	"github.com/sixtyday/jobboard/internal/config"
	"gopkg.in/gomail.v2"
)

// Notification carries everything needed to tell a recruiter about a new
// applicant.
type Notification struct {
	To             string
	JobTitle       string
	CandidateName  string
	Message        string
	Resume         []byte // nil when the candidate attached no resume
	ResumeFilename string
}

type Mailer interface {
	SendRecruiterNotification(n Notification) error
}

// MailService delivers recruiter notifications over an authenticated
// STARTTLS relay. Credentials come in through the constructor so the
// dispatcher can be swapped for a fake transport in tests.
type MailService struct {
	sender   string
	siteName string
	dialer   *gomail.Dialer
}

func NewMailService(cfg *config.MailConfig, siteName string) *MailService {
	return &MailService{
		sender:   cfg.Sender,
		siteName: siteName,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.Password),
	}
}

// BuildMessage constructs the outgoing mail without sending it: a plain-text
// summary of the application plus the resume as a binary attachment when one
// was supplied.
func (s *MailService) BuildMessage(n Notification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", "New applicant for job posting")
	m.SetBody("text/plain", fmt.Sprintf(`Hello,

A new candidate has applied to your job posting: %q.

Candidate Name: %s
Message: %s

Please log in to %s to view full application details.

Thanks,
%s Bot
`, n.JobTitle, n.CandidateName, n.Message, s.siteName, s.siteName))

	if len(n.Resume) > 0 {
		filename := n.ResumeFilename
		if filename == "" {
			filename = "resume.pdf"
		}
		resume := n.Resume
		m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(resume)
			return err
		}))
	}
	return m
}

func (s *MailService) SendRecruiterNotification(n Notification) error {
	return s.dialer.DialAndSend(s.BuildMessage(n))
}
