package storage

import (
	"xiwal/domain"
	schemestore "xiwal/storage"
)

// schemeInfoToDomain converts a storage.SchemeInfo to domain.SchemeEntry
func schemeInfoToDomain(info schemestore.SchemeInfo) domain.SchemeEntry {
	return domain.SchemeEntry{
		Colors:    info.Colors,
		CreatedAt: info.CreatedAt,
		Full:      info.Full,
		ID:        info.ID,
		Inputs:    info.Inputs,
		Key:       info.Key,
		Score:     info.Score,
		Source:    info.Source,
		UpdatedAt: info.UpdatedAt,
	}
}

// domainToSchemeInfo converts a domain.SchemeEntry to storage.SchemeInfo
func domainToSchemeInfo(entry domain.SchemeEntry) schemestore.SchemeInfo {
	return schemestore.SchemeInfo{
		Colors:    entry.Colors,
		CreatedAt: entry.CreatedAt,
		Full:      entry.Full,
		ID:        entry.ID,
		Inputs:    entry.Inputs,
		Key:       entry.Key,
		Score:     entry.Score,
		Source:    entry.Source,
		UpdatedAt: entry.UpdatedAt,
	}
}
