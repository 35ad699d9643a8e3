package converter

import (
	"arcade_backend/internal/api/dto/feed"
	"arcade_backend/internal/api/dto/fortune"
	"arcade_backend/internal/model"
)

func ToFeedItemResponse(item *model.FeedItem) feed.ItemResponse {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return feed.ItemResponse{
		ID:         item.ID,
		Title:      item.Title,
		Content:    item.Content,
		AuthorID:   item.AuthorID,
		Tags:       tags,
		SourceName: item.SourceName,
		SourceURL:  item.SourceURL,
		CreatedAt:  item.CreatedAt,
	}
}

func ToFeedListResponse(items []model.FeedItem) feed.ListResponse {
	res := feed.ListResponse{Items: make([]feed.ItemResponse, len(items))}
	for i := range items {
		res.Items[i] = ToFeedItemResponse(&items[i])
	}
	return res
}

func ToFortuneResponse(r *model.FortuneReading) fortune.DrawResponse {
	return fortune.DrawResponse{
		Card:     r.Card,
		Reversed: r.Reversed,
		Reading:  r.Reading,
	}
}
