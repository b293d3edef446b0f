package mapper

import (
	"cs-assistant-be/internal/dto"
	"cs-assistant-be/internal/entity"
)

type TranscriptMapper struct{}

func NewTranscriptMapper() *TranscriptMapper {
	return &TranscriptMapper{}
}

func (m *TranscriptMapper) EntryToDTO(e *entity.TranscriptEntry) dto.TranscriptEntry {
	return dto.TranscriptEntry{
		Id:        e.Id,
		Sender:    e.Sender,
		Content:   e.Content,
		Timestamp: e.CreatedAt,
	}
}

func (m *TranscriptMapper) EntriesToDTO(entries []*entity.TranscriptEntry) []dto.TranscriptEntry {
	out := make([]dto.TranscriptEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		out = append(out, m.EntryToDTO(e))
	}
	return out
}
