package httpserver

import "strings"

type SearchByTitleRequest struct {
	Title string `query:"title" json:"title" validate:"required,notblank,max=200"`
}

func (r *SearchByTitleRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

type FindCommonRequest struct {
	Actor1 string `query:"actor1" json:"actor1" validate:"required,notblank,max=200"`
	Actor2 string `query:"actor2" json:"actor2" validate:"required,notblank,max=200"`
}

func (r *FindCommonRequest) normalize() {
	r.Actor1 = strings.TrimSpace(r.Actor1)
	r.Actor2 = strings.TrimSpace(r.Actor2)
}
