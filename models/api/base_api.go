package apimodels

import "github.com/pkg/errors"

const (
	statusSuccess = "success"
	statusFail    = "fail"

	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type Response struct {
	Status  string      `json:"status"`            // success или fail
	Message string      `json:"message,omitempty"` // текст ошибки
	Data    interface{} `json:"data,omitempty"`
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` // всего записей по фильтру
}

func NewError(message string) Response {
	return Response{Status: statusFail, Message: message}
}

func NewResponse(data interface{}) Response {
	return Response{Status: statusSuccess, Data: data}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице, не более 100
	Page  int `json:"page"`  // Номер страницы начиная с 1
}

func (r Pagination) Validate() error {
	if r.Page < 0 {
		return errors.New("номер страницы не может быть отрицательным")
	}
	if r.Limit < 0 {
		return errors.New("размер страницы не может быть отрицательным")
	}
	return nil
}

// GetPage возвращает страницу и размер страницы, нулевые значения заменяются значениями по умолчанию
func (r Pagination) GetPage() (page, limit int) {
	page, limit = r.Page, r.Limit
	if page == 0 {
		page = 1
	}
	switch {
	case limit == 0:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return page, limit
}
