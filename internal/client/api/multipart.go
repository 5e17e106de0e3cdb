package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pitchmate/pitchmate/pkg/api"
)

// Имя файлового поля, которое ждет сервер при загрузке аватара
const profileImgField = "profile_img"

// RegisterParams представляет поля формы регистрации
type RegisterParams struct {
	Username   string
	Email      string
	Password   string
	SkillLevel string
}

// UpdateUserParams представляет поля формы редактирования профиля.
// Пустые поля не отправляются и остаются без изменений.
type UpdateUserParams struct {
	Username   string
	SkillLevel string
}

// Register регистрирует пользователя multipart-формой.
// imagePath — необязательный путь к файлу аватара.
func (c *Client) Register(ctx context.Context, params RegisterParams, imagePath string) (*api.AuthResponse, error) {
	fields := map[string]string{
		"username":   params.Username,
		"email":      params.Email,
		"password":   params.Password,
		"skillLevel": params.SkillLevel,
	}

	var resp api.AuthResponse
	if err := c.doMultipart(ctx, "POST", "/auth/register", fields, imagePath, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// UpdateUser обновляет профиль multipart-формой
func (c *Client) UpdateUser(ctx context.Context, userID string, params UpdateUserParams, imagePath string) (*api.User, error) {
	fields := map[string]string{}
	if params.Username != "" {
		fields["username"] = params.Username
	}
	if params.SkillLevel != "" {
		fields["skillLevel"] = params.SkillLevel
	}

	var user api.User
	path := fmt.Sprintf("/auth/users/%s", url.PathEscape(userID))
	if err := c.doMultipart(ctx, "PUT", path, fields, imagePath, &user); err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &user, nil
}

// doMultipart выполняет multipart/form-data запрос через пайплайн.
// Тело собирается в буфер целиком, поэтому запрос можно повторить
// после обновления токенов.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, imagePath string, result interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if imagePath != "" {
		if err := attachFile(writer, imagePath); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return decodeResponse(resp, result)
}

// attachFile добавляет файл аватара в multipart-форму
func attachFile(writer *multipart.Writer, imagePath string) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	part, err := writer.CreateFormFile(profileImgField, filepath.Base(imagePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy image into form: %w", err)
	}

	return nil
}
