package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privyhq/privy/internal/adapter"
	"github.com/privyhq/privy/models"
)

type mainScreen int

const (
	screenChats mainScreen = iota
	screenTranscript
	screenMemory
)

type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	user    models.User

	screen  mainScreen
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	chats      []models.Chat
	idx        int
	creating   bool
	titleInput textinput.Model

	activeChat models.Chat
	transcript []models.MessageView
	compose    textinput.Model
	sending    bool

	memories  []models.MemoryView
	memAdding bool
	memInput  textinput.Model
	memSaving bool

	confirmBurn bool
	burning     bool
	burned      bool
}

func newMainLoopModel(ctx context.Context, serverAdapter adapter.ServerAdapter, user models.User) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	titleInput := textinput.New()
	titleInput.Placeholder = "chat title"
	titleInput.CharLimit = 80
	titleInput.Width = 40

	compose := textinput.New()
	compose.Placeholder = "say something"
	compose.CharLimit = 2000
	compose.Width = 60

	memInput := textinput.New()
	memInput.Placeholder = "something worth remembering"
	memInput.CharLimit = 2000
	memInput.Width = 60

	return mainLoopModel{
		ctx:        ctx,
		adapter:    serverAdapter,
		user:       user,
		spinner:    s,
		loading:    true,
		titleInput: titleInput,
		compose:    compose,
		memInput:   memInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadChats())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case chatsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.chats = msg.chats
		if m.idx >= len(m.chats) {
			m.idx = len(m.chats) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case chatCreatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.creating = false
		m.titleInput.SetValue("")
		m.status = "Chat created"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadChats()
	case transcriptLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.screen = screenChats
			return m, nil
		}
		m.errMsg = ""
		m.transcript = msg.views
		return m, nil
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.compose.SetValue("")
		m.transcript = append(m.transcript, msg.view)
		return m, nil
	case memoriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.screen = screenChats
			return m, nil
		}
		m.errMsg = ""
		m.memories = msg.views
		return m, nil
	case memorySavedMsg:
		m.memSaving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.memAdding = false
		m.memInput.SetValue("")
		m.status = "Memory saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadMemories()
	case memoriesClearedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "All memories forgotten"
		m.errMsg = ""
		m.memories = nil
		return m, nil
	case accountBurnedMsg:
		m.burning = false
		m.confirmBurn = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.burned = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateActiveInput(msg)
	}

	if m.confirmBurn {
		return m.updateConfirmBurn(keyMsg)
	}

	switch m.screen {
	case screenTranscript:
		return m.updateTranscript(keyMsg)
	case screenMemory:
		return m.updateMemory(keyMsg)
	default:
		return m.updateChats(keyMsg)
	}
}

func (m mainLoopModel) updateConfirmBurn(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.burning {
			return m, nil
		}
		m.burning = true
		return m, m.cmdBurn()
	case key.Matches(keyMsg, keys.no):
		m.confirmBurn = false
	}
	return m, nil
}

func (m mainLoopModel) updateChats(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.creating {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.creating = false
			m.titleInput.SetValue("")
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			title := strings.TrimSpace(m.titleInput.Value())
			if title == "" {
				m.errMsg = "A chat needs a title"
				return m, nil
			}
			m.errMsg = ""
			return m, m.cmdCreateChat(title)
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(keyMsg)
		return m, cmd
	}

	switch {
	case keyMsg.String() == "ctrl+c", key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.chats)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newChat):
		m.creating = true
		m.titleInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadChats()
	case key.Matches(keyMsg, keys.memory):
		m.screen = screenMemory
		m.loading = true
		return m, m.cmdLoadMemories()
	case key.Matches(keyMsg, keys.burn):
		m.confirmBurn = true
	case key.Matches(keyMsg, keys.enter):
		chat, ok := m.currentChat()
		if !ok {
			m.status = "No chats yet"
			return m, nil
		}
		m.activeChat = chat
		m.screen = screenTranscript
		m.loading = true
		m.compose.Focus()
		return m, tea.Batch(textinput.Blink, m.cmdLoadTranscript(chat.ChatID))
	}

	return m, nil
}

func (m mainLoopModel) updateTranscript(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenChats
		m.compose.SetValue("")
		m.errMsg = ""
		return m, nil
	case "enter":
		if m.sending {
			return m, nil
		}
		text := strings.TrimSpace(m.compose.Value())
		if text == "" {
			return m, nil
		}
		m.sending = true
		m.errMsg = ""
		return m, m.cmdSendMessage(m.activeChat.ChatID, text)
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateMemory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.memAdding {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.memAdding = false
			m.memInput.SetValue("")
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.memSaving {
				return m, nil
			}
			content := strings.TrimSpace(m.memInput.Value())
			if content == "" {
				m.errMsg = "Nothing to remember"
				return m, nil
			}
			m.memSaving = true
			m.errMsg = ""
			return m, m.cmdSaveMemory(content)
		}
		var cmd tea.Cmd
		m.memInput, cmd = m.memInput.Update(keyMsg)
		return m, cmd
	}

	switch {
	case keyMsg.String() == "ctrl+c", key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenChats
		m.errMsg = ""
	case key.Matches(keyMsg, keys.save):
		m.memAdding = true
		m.memInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadMemories()
	case key.Matches(keyMsg, keys.clear):
		return m, m.cmdClearMemories()
	}

	return m, nil
}

// updateActiveInput forwards non-key messages (cursor blinks mostly) to
// whichever text input currently has focus.
func (m mainLoopModel) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.creating:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case m.screen == screenTranscript:
		m.compose, cmd = m.compose.Update(msg)
	case m.memAdding:
		m.memInput, cmd = m.memInput.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) currentChat() (models.Chat, bool) {
	if len(m.chats) == 0 || m.idx < 0 || m.idx >= len(m.chats) {
		return models.Chat{}, false
	}
	return m.chats[m.idx], true
}

func (m mainLoopModel) View() string {
	if m.confirmBurn {
		return m.viewConfirmBurn()
	}

	switch m.screen {
	case screenTranscript:
		return m.viewTranscript()
	case screenMemory:
		return m.viewMemory()
	default:
		return m.viewChats()
	}
}

func (m mainLoopModel) viewConfirmBurn() string {
	content := "Burn this identity?\n\n"
	content += "Every chat, message and memory will be destroyed.\n"
	content += "Your token becomes worthless. There is no undo.\n\n"
	if m.burning {
		content += m.spinner.View() + " burning...\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

func (m mainLoopModel) viewChats() string {
	var b strings.Builder

	if m.user.Plan != "" {
		b.WriteString(helpStyle.Render("plan: " + m.user.Plan))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	} else if len(m.chats) == 0 {
		b.WriteString("No chats yet. Press n to start one.\n")
	} else {
		for i, chat := range m.chats {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, fitText(chat.Title, 50)))
		}
	}

	if m.creating {
		b.WriteString("\nNew chat: [")
		b.WriteString(m.titleInput.View())
		b.WriteString("]\n")
	}

	m.appendStatus(&b)

	return renderPage("PRIVY · CHATS",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ m: memory │ r: refresh │ ctrl+b: burn │ q: quit")
}

func (m mainLoopModel) viewTranscript() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	} else if len(m.transcript) == 0 {
		b.WriteString("Empty chat.\n")
	} else {
		for _, view := range m.transcript {
			prefix := "you "
			if view.Role == "assistant" {
				prefix = "coach"
			}
			b.WriteString(prefix)
			b.WriteString(" │ ")
			b.WriteString(fitText(partsText(view.Parts), 60))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n> [")
	b.WriteString(m.compose.View())
	b.WriteString("]")
	if m.sending {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	m.appendStatus(&b)

	return renderPage("PRIVY · "+strings.ToUpper(fitText(m.activeChat.Title, 40)),
		strings.TrimRight(b.String(), "\n"),
		"enter: send │ esc: back")
}

func (m mainLoopModel) viewMemory() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	} else if len(m.memories) == 0 {
		b.WriteString("Nothing remembered yet.\n")
	} else {
		for _, view := range m.memories {
			b.WriteString(fmt.Sprintf("[%s] %s\n", view.ContentType, fitText(view.Content, 55)))
		}
	}

	if m.memAdding {
		b.WriteString("\nRemember: [")
		b.WriteString(m.memInput.View())
		b.WriteString("]")
		if m.memSaving {
			b.WriteString(" ")
			b.WriteString(m.spinner.View())
		}
		b.WriteString("\n")
	}

	m.appendStatus(&b)

	return renderPage("PRIVY · MEMORY",
		strings.TrimRight(b.String(), "\n"),
		"s: save │ ctrl+d: forget all │ r: refresh │ esc: back │ q: quit")
}

func (m mainLoopModel) appendStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errMsg))
		b.WriteString("\n")
	}
}

func partsText(parts []models.MessagePart) string {
	var texts []string
	for _, part := range parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, " ")
}

func (m mainLoopModel) cmdLoadChats() tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		chats, err := srv.ListChats(ctx)
		return chatsLoadedMsg{chats: chats, err: err}
	}
}

func (m mainLoopModel) cmdCreateChat(title string) tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		chat, err := srv.CreateChat(ctx, models.CreateChatRequest{Title: title})
		return chatCreatedMsg{chat: chat, err: err}
	}
}

func (m mainLoopModel) cmdLoadTranscript(chatID string) tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		views, err := srv.ListMessages(ctx, chatID)
		return transcriptLoadedMsg{chatID: chatID, views: views, err: err}
	}
}

func (m mainLoopModel) cmdSendMessage(chatID, text string) tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		view, err := srv.AppendMessage(ctx, chatID, models.AppendMessageRequest{
			Role:  "user",
			Parts: []models.MessagePart{{Type: "text", Text: text}},
		})
		return messageSentMsg{view: view, err: err}
	}
}

func (m mainLoopModel) cmdLoadMemories() tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		views, err := srv.ListMemories(ctx, 0)
		return memoriesLoadedMsg{views: views, err: err}
	}
}

func (m mainLoopModel) cmdSaveMemory(content string) tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		_, err := srv.SaveMemory(ctx, models.SaveMemoryRequest{Content: content})
		return memorySavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdClearMemories() tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		return memoriesClearedMsg{err: srv.DeleteMemories(ctx)}
	}
}

func (m mainLoopModel) cmdBurn() tea.Cmd {
	ctx := m.ctx
	srv := m.adapter

	return func() tea.Msg {
		return accountBurnedMsg{err: srv.BurnAccount(ctx)}
	}
}
