package domain

import "time"

// SiteSettings textos editáveis da landing page, guardados como key/value na tabela site_config
type SiteSettings struct {
	HeroName            string `mapstructure:"hero_name" json:"hero_name"`
	HeroTagline         string `mapstructure:"hero_tagline" json:"hero_tagline"`
	HeroDescription     string `mapstructure:"hero_description" json:"hero_description"`
	SectionFreeTitle    string `mapstructure:"section_free_title" json:"section_free_title"`
	SectionFreeSubtitle string `mapstructure:"section_free_subtitle" json:"section_free_subtitle"`
	SectionPaidTitle    string `mapstructure:"section_paid_title" json:"section_paid_title"`
	SectionPaidSubtitle string `mapstructure:"section_paid_subtitle" json:"section_paid_subtitle"`
	ContactTitle        string `mapstructure:"contact_title" json:"contact_title"`
	ContactSubtitle     string `mapstructure:"contact_subtitle" json:"contact_subtitle"`
	ContactWhatsapp     string `mapstructure:"contact_whatsapp" json:"contact_whatsapp"`
	ContactEmail        string `mapstructure:"contact_email" json:"contact_email"`
	ContactThreads      string `mapstructure:"contact_threads" json:"contact_threads"`
	FooterQuote         string `mapstructure:"footer_quote" json:"footer_quote"`
}

// DefaultSiteSettings valores exibidos enquanto a chave não existir no banco
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		HeroName:            "Althur",
		HeroTagline:         "Meta Ads marketer yang suka ngoding & bikin tools pake AI.",
		HeroDescription:     "Gue sharing hal-hal praktis soal AI coding, Facebook Ads, automation, dan internal tools. Halaman ini isinya resource yang udah dikurasi, simpel, berguna, tanpa basa-basi.",
		SectionFreeTitle:    "Resource Gratis",
		SectionFreeSubtitle: "Coba dulu. Nilai nanti.",
		SectionPaidTitle:    "Resource Berbayar",
		SectionPaidSubtitle: "Buat eksekusi yang lebih cepat.",
		ContactTitle:        "Kerja Bareng",
		ContactSubtitle:     "Ngobrol dulu aja.",
		FooterQuote:         "Tools dan AI harusnya bikin hidup lebih simpel, bukan makin ribet.",
	}
}

// SiteConfigEntry linha da tabela site_config
type SiteConfigEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LandingPage payload público da página inicial
type LandingPage struct {
	Settings      SiteSettings   `json:"settings"`
	FreeResources []ResourceCard `json:"free_resources"`
	PaidResources []ResourceCard `json:"paid_resources"`
}
