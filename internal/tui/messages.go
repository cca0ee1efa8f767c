package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privyhq/privy/models"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the token flow. On success the root router quits the
// program and hands the user back to the caller.
type AuthResult struct {
	User models.User
	Err  error
}

type chatsLoadedMsg struct {
	chats []models.Chat
	err   error
}

type chatCreatedMsg struct {
	chat models.Chat
	err  error
}

type transcriptLoadedMsg struct {
	chatID string
	views  []models.MessageView
	err    error
}

type messageSentMsg struct {
	view models.MessageView
	err  error
}

type memoriesLoadedMsg struct {
	views []models.MemoryView
	err   error
}

type memorySavedMsg struct {
	err error
}

type memoriesClearedMsg struct {
	err error
}

type accountBurnedMsg struct {
	err error
}
