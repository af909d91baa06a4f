package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"testplatform/api/internal/models"
)

// CompletionNotice is everything the creator email needs.
type CompletionNotice struct {
	CreatorEmail    string
	TestTitle       string
	RespondentEmail string
	Response        models.TestResponse
}

type answerLine struct {
	QuestionID string
	Value      string
}

var completionTemplate = template.Must(template.New("completion").Parse(`<html>
    <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <div style="background: #f8f9fa; padding: 20px; text-align: center;">
            <h1 style="color: #333;">Новый ответ на ваш тест!</h1>
        </div>
        <div style="padding: 20px;">
            <h2>📋 {{.Title}}</h2>
            <p><strong>👤 Респондент:</strong> {{.Respondent}}</p>
            <p><strong>📅 Дата прохождения:</strong> {{.CompletedAt}}</p>
            <div style="background: #e3f2fd; padding: 15px; border-radius: 5px; margin: 20px 0;">
                <h3>🎯 Ответы:</h3>
                <div style="white-space: pre-wrap;">{{range .Answers}}{{.QuestionID}}: {{.Value}}
{{end}}</div>
            </div>
            <div style="text-align: center; margin-top: 30px;">
                <p style="color: #666;">Создайте свой тест на нашей платформе!</p>
            </div>
        </div>
    </body>
</html>
`))

// Subject for the creator notification.
func Subject(testTitle string) string {
	return "Новый ответ на ваш тест: " + testTitle
}

// Render builds the creator notification. All interpolated values are HTML-escaped.
func Render(n CompletionNotice) (Message, error) {
	var buf bytes.Buffer
	err := completionTemplate.Execute(&buf, struct {
		Title       string
		Respondent  string
		CompletedAt string
		Answers     []answerLine
	}{
		Title:       n.TestTitle,
		Respondent:  n.RespondentEmail,
		CompletedAt: n.Response.CompletedAt.Format(time.RFC3339),
		Answers:     answerLines(n.Response.Answers),
	})
	if err != nil {
		return Message{}, fmt.Errorf("render completion email: %w", err)
	}
	return Message{
		To:       n.CreatorEmail,
		Subject:  Subject(n.TestTitle),
		HTMLBody: buf.String(),
	}, nil
}

// answerLines orders answers by question id so the email is stable.
func answerLines(answers map[string]any) []answerLine {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]answerLine, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, answerLine{QuestionID: k, Value: formatAnswer(answers[k])})
	}
	return lines
}

func formatAnswer(v any) string {
	switch val := v.(type) {
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, formatAnswer(p))
		}
		return strings.Join(parts, ", ")
	case nil:
		return "-"
	default:
		return fmt.Sprint(val)
	}
}
