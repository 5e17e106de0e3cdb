package cli

import (
	"fmt"
	"text/template"

	"github.com/pitchmate/pitchmate/internal/client/auth"
	"github.com/pitchmate/pitchmate/internal/client/iocli"
	"github.com/pitchmate/pitchmate/internal/client/posts"
	"github.com/pitchmate/pitchmate/internal/client/session"
	"github.com/pitchmate/pitchmate/pkg/api"
)

// Cli связывает команды терминала с сервисами клиента
type Cli struct {
	io           iocli.IO
	session      *session.Store
	authService  auth.Service
	postsService posts.Service
	googleFlow   *auth.GoogleFlow

	// loggingOut выставляется на время явного logout: его Clear
	// не должен печатать сообщение о протухшей сессии
	loggingOut bool
	wasAuthed  bool
}

// New создает CLI поверх сервисов и подписывается на мутации сессии
func New(io iocli.IO, sess *session.Store, authService auth.Service, postsService posts.Service, googleFlow *auth.GoogleFlow) *Cli {
	c := &Cli{
		io:           io,
		session:      sess,
		authService:  authService,
		postsService: postsService,
		googleFlow:   googleFlow,
		wasAuthed:    sess.IsAuthenticated(),
	}
	sess.Subscribe(c.onSessionChange)
	return c
}

// onSessionChange вызывается после каждой мутации сессии.
// Пайплайн молча чистит сессию при неудачном refresh посреди
// команды; здесь этот переход становится видимым пользователю.
func (c *Cli) onSessionChange() {
	authed := c.session.IsAuthenticated()
	wasAuthed := c.wasAuthed
	c.wasAuthed = authed

	if wasAuthed && !authed && !c.loggingOut {
		c.io.Println("Your session has expired. Please run 'pitchmate login' to sign in again.")
	}
}

// requireUser возвращает текущего пользователя или ошибку,
// если сессия пуста
func (c *Cli) requireUser() (*api.User, error) {
	user := c.session.User()
	if user == nil {
		return nil, fmt.Errorf("not authenticated. Please run 'pitchmate login' first")
	}
	return user, nil
}

// render выполняет шаблон и пишет результат в терминал
func (c *Cli) render(tmpl string, data any) error {
	t, err := template.New("out").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageText)
}
