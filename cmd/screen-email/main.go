package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/di"
	"github.com/mikey/applicant-screener/internal/ports"
	"github.com/mikey/applicant-screener/internal/resume"
	"github.com/mikey/applicant-screener/internal/scoring"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(
	flags *di.CLIFlags,
	logger *zap.Logger,
	emailIngress ports.EmailIngress,
	parser *resume.Parser,
	engine *scoring.Engine,
) error {
	defer logger.Sync()

	email, err := readEmail(flags, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Direct mode: score against a job given on the command line, without
	// classification or persistence
	if flags.JobTitle != "" {
		job := &core.JobPosting{
			Title:          flags.JobTitle,
			Description:    flags.JobDescription,
			RequiredSkills: splitSkills(flags.JobSkills),
		}

		parsed := parser.Parse(ctx, email.Body)
		result := engine.Score(ctx, job, email.Body)

		fmt.Printf("\n=== Direct Scoring ===\n")
		fmt.Printf("Job: %s\n", job.Title)
		fmt.Printf("Candidate: %s\n", parsed.Personal.Name)
		fmt.Printf("Score: %d\n", result.Score)
		fmt.Printf("Status: %s\n", result.Status)
		fmt.Printf("Reasoning: %s\n", result.Reasoning)
		return nil
	}

	_, err = emailIngress.ProcessEmail(ctx, email)
	return err
}

func readEmail(flags *di.CLIFlags, logger *zap.Logger) (*core.InboundEmail, error) {
	var emailReader io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", flags.InputFile, err)
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", flags.InputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	msg, err := mail.ReadMessage(bufio.NewReader(emailReader))
	if err != nil {
		return nil, fmt.Errorf("failed to parse email: %w", err)
	}

	bodyBytes, err := io.ReadAll(msg.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read email body: %w", err)
	}

	return &core.InboundEmail{
		Subject: msg.Header.Get("Subject"),
		From:    msg.Header.Get("From"),
		Body:    string(bodyBytes),
	}, nil
}

func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
