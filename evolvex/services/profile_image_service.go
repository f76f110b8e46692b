package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// ProfileImageService renders profile cards to PNG via headless Chrome.
type ProfileImageService struct {
	logger *slog.Logger
}

type ProfileCardData struct {
	Username     string
	AvatarLetter string
	MemberSince  string
	Level        int
	ExpPercent   int
	CurrentExp   int64
	RequiredExp  int64
	Strength     int
	Agility      int
	Intelligence int
	Title        string
	StreakCount  int
	QuestCount   int
}

func NewProfileImageService() *ProfileImageService {
	service := &ProfileImageService{
		logger: slog.With(slog.String("service", "profile_image")),
	}

	service.testChromedpAvailability()

	return service
}

func (s *ProfileImageService) testChromedpAvailability() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chromedpCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	err := chromedp.Run(chromedpCtx, chromedp.Navigate("data:text/html,<html><body>test</body></html>"))
	if err != nil {
		s.logger.Error("chromedp not available - image generation will fail",
			slog.String("error", err.Error()))
	} else {
		s.logger.Info("chromedp is available and working")
	}
}

func (s *ProfileImageService) GenerateProfileCard(ctx context.Context, data ProfileCardData) ([]byte, error) {
	start := time.Now()
	s.logger.Info("Starting profile card generation",
		slog.String("username", data.Username),
		slog.Int("level", data.Level))

	if data.AvatarLetter == "" && data.Username != "" {
		data.AvatarLetter = strings.ToUpper(data.Username[:1])
	}
	if data.MemberSince == "" {
		data.MemberSince = time.Now().Format("Jan 2006")
	}
	if data.RequiredExp > 0 {
		data.ExpPercent = int(data.CurrentExp * 100 / data.RequiredExp)
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	chromedpCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	chromedpCtx, cancel = context.WithTimeout(chromedpCtx, 15*time.Second)
	defer cancel()

	var imageBytes []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("data:text/html,"+htmlContent),
		chromedp.WaitVisible("#profile-container", chromedp.ByID),
		chromedp.Sleep(200*time.Millisecond),
		chromedp.Screenshot("#profile-container", &imageBytes, chromedp.ByID),
	)

	if err != nil {
		s.logger.Error("Failed to generate image with chromedp",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	s.logger.Info("Profile card generated",
		slog.String("username", data.Username),
		slog.Int("image_size", len(imageBytes)),
		slog.Duration("elapsed", time.Since(start)))

	return imageBytes, nil
}

func (s *ProfileImageService) generateHTML(data ProfileCardData) (string, error) {
	templatePath := filepath.Join("evolvex", "templates", "profile.html")

	templateContent, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template file: %w", err)
	}

	tmpl, err := template.New("profile").Parse(string(templateContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	// data: URLs choke on bare # and newlines
	htmlContent := strings.ReplaceAll(buf.String(), "#", "%23")
	htmlContent = strings.ReplaceAll(htmlContent, "\n", "")

	return htmlContent, nil
}
