package ui

import (
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/ratel-online/unoparty/consts"
)

// PromptString asks until a non-empty answer is given. An empty answer
// falls back to fallback when it is set.
func PromptString(line *liner.State, message string, fallback string) (string, error) {
	for {
		input, err := line.Prompt(message)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return "", consts.ErrorsChanClosed
			}
			return "", err
		}
		input = strings.TrimSpace(input)
		if input == "" && fallback != "" {
			return fallback, nil
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		return input, nil
	}
}

func PromptName(line *liner.State, fallback string) (string, error) {
	return PromptString(line, "Your name ["+fallback+"]: ", fallback)
}
