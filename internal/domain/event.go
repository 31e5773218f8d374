package domain

import "time"

// PageView evento de visualização de página. Imutável depois de gravado.
type PageView struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ResourceClick evento de clique em um resource da landing page
type ResourceClick struct {
	ID            string    `json:"id"`
	ResourceID    string    `json:"resource_id"`
	ResourceTitle string    `json:"resource_title"`
	CreatedAt     time.Time `json:"created_at"`
}

// RawEvent forma genérica usada pelo Aggregator: timestamp e dimensão (path ou título)
type RawEvent struct {
	Timestamp time.Time
	Dimension string
}
