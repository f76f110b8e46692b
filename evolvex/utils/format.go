package utils

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar renders a fixed-width text bar for embeds.
func ProgressBar(current, max int64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}

	filled := int(current * int64(width) / max)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatExpLine renders "1,234 / 10,000 EXP" style lines.
func FormatExpLine(current, required int64) string {
	return fmt.Sprintf("%s / %s EXP", FormatNumber(current), FormatNumber(required))
}

// FormatNumber adds thousands separators.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

// FormatDuration renders a duration as "1h 23m" or "45m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatStatName maps stat keys to display labels.
func FormatStatName(name string) string {
	switch name {
	case "strength":
		return "💪 Strength"
	case "agility":
		return "🏃 Agility"
	case "intelligence":
		return "🧠 Intelligence"
	case "stamina":
		return "⚡ Stamina"
	case "max_stamina":
		return "⚡ Max Stamina"
	case "health":
		return "❤️ Health"
	case "max_health":
		return "❤️ Max Health"
	case "exp":
		return "✨ EXP"
	}
	return name
}
