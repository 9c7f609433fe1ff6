// internal/models/challenge.go
package models

// Challenge is a fill-in-the-blank coding trivia question. A correct answer
// earns the player a bonus card.
type Challenge struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	PromptStart string `json:"prompt_start"`
	PromptEnd   string `json:"prompt_end"`
	Answer      string `json:"answer"`
	Difficulty  string `json:"difficulty,omitempty"` // easy | intermediate | difficult
}
