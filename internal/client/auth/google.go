package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// googleIssuer — OIDC issuer Google, endpoints берем из discovery
const googleIssuer = "https://accounts.google.com"

// GoogleFlow получает Google ID token через локальный browser flow:
// поднимает loopback-редирект, открывает пользователю ссылку на
// согласие, обменивает authorization code на токены и проверяет
// подпись ID token перед тем, как отдать его серверу Pitchmate.
type GoogleFlow struct {
	clientID     string
	clientSecret string

	// OpenURL показывает пользователю ссылку для входа.
	// По умолчанию печатает ее в stdout.
	OpenURL func(url string)
}

// NewGoogleFlow создает flow с заданными OAuth-учетными данными
func NewGoogleFlow(clientID, clientSecret string) *GoogleFlow {
	return &GoogleFlow{
		clientID:     clientID,
		clientSecret: clientSecret,
		OpenURL: func(url string) {
			fmt.Println("Open this URL in your browser to sign in with Google:")
			fmt.Println()
			fmt.Println("  " + url)
			fmt.Println()
		},
	}
}

// Obtain выполняет полный flow и возвращает проверенный raw ID token
func (f *GoogleFlow) Obtain(ctx context.Context) (string, error) {
	if f.clientID == "" || f.clientSecret == "" {
		return "", fmt.Errorf("google oauth is not configured (set PITCHMATE_GOOGLE_CLIENT_ID and PITCHMATE_GOOGLE_CLIENT_SECRET)")
	}

	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to discover google oidc endpoints: %w", err)
	}

	// Loopback-редирект на случайном порту
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("failed to open loopback listener: %w", err)
	}
	defer func() {
		_ = listener.Close()
	}()

	conf := &oauth2.Config{
		ClientID:     f.clientID,
		ClientSecret: f.clientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  fmt.Sprintf("http://%s/callback", listener.Addr().String()),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	state, err := randomState()
	if err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	authURL := conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	f.OpenURL(authURL)

	code, err := waitForCode(ctx, listener, state)
	if err != nil {
		return "", err
	}

	// Обмениваем authorization code на токены
	token, err := conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", fmt.Errorf("google response contains no id_token")
	}

	// Проверяем подпись и audience до отправки на сервер
	idVerifier := provider.Verifier(&oidc.Config{ClientID: f.clientID})
	if _, err := idVerifier.Verify(ctx, rawIDToken); err != nil {
		return "", fmt.Errorf("failed to verify google id token: %w", err)
	}

	return rawIDToken, nil
}

// waitForCode обслуживает один callback-запрос и возвращает code
func waitForCode(ctx context.Context, listener net.Listener, state string) (string, error) {
	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)

	server := &http.Server{
		ReadHeaderTimeout: 10 * time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if query.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				resultCh <- result{err: fmt.Errorf("oauth state mismatch")}
				return
			}
			if errMsg := query.Get("error"); errMsg != "" {
				http.Error(w, errMsg, http.StatusBadRequest)
				resultCh <- result{err: fmt.Errorf("google sign-in refused: %s", errMsg)}
				return
			}
			fmt.Fprintln(w, "Signed in. You can close this tab and return to the terminal.")
			resultCh <- result{code: query.Get("code")}
		}),
	}

	go func() {
		// ErrServerClosed здесь штатный
		_ = server.Serve(listener)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		if res.code == "" {
			return "", fmt.Errorf("google callback contains no code")
		}
		return res.code, nil
	case <-ctx.Done():
		return "", fmt.Errorf("google sign-in canceled: %w", ctx.Err())
	}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
