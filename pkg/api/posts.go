package api

// Post представляет объявление о матче
type Post struct {
	ID              string   `json:"_id,omitempty"`
	Owner           string   `json:"owner"`    // ID автора
	Title           string   `json:"title"`    // заголовок объявления
	Content         string   `json:"content"`  // описание матча
	Location        string   `json:"location"` // где играем
	Date            string   `json:"date"`     // дата и время матча (RFC3339)
	Img             string   `json:"img,omitempty"`
	ParticipantsIDs []string `json:"participantsIds,omitempty"` // кто записался
	LikesNumber     int      `json:"likes_number,omitempty"`
	CommentsNumber  int      `json:"comments_number,omitempty"`
}

// ParticipantRequest представляет запись/выход участника матча
type ParticipantRequest struct {
	UserID string `json:"userId"`
}

// LikeRequest представляет лайк поста
type LikeRequest struct {
	UserID string `json:"userId"`
}

// TeamsResponse представляет два состава, рассчитанных сервером.
// Балансировка команд целиком на стороне сервера, клиент только отображает.
type TeamsResponse struct {
	TeamA []string `json:"teamA"`
	TeamB []string `json:"teamB"`
}

// Comment представляет комментарий к посту
type Comment struct {
	ID      string `json:"_id,omitempty"`
	PostID  string `json:"postId,omitempty"`
	Owner   string `json:"owner"`
	Comment string `json:"comment"`
	Time    string `json:"time,omitempty"`
}

// CreateCommentRequest представляет запрос на создание комментария
type CreateCommentRequest struct {
	PostID  string `json:"postId"`
	Owner   string `json:"owner"`
	Comment string `json:"comment"`
}
