// Package schema builds the bilingual provider and model descriptors exposed
// to a host conversational-AI framework for plugin configuration.
package schema

import (
	"github.com/go-openapi/swag"
	json "github.com/goccy/go-json"
)

// ProviderName identifies this integration to the host framework.
const ProviderName = "vertex_ai"

// I18n is an English/Hebrew localized string pair.
type I18n struct {
	EnUS string `json:"en_US"`
	He   string `json:"he"`
}

// Bilingual builds an I18n with distinct English and Hebrew values.
func Bilingual(en, he string) I18n {
	return I18n{EnUS: en, He: he}
}

// Uniform builds an I18n carrying the same value for both locales, for names
// and icons that do not translate.
func Uniform(v string) I18n {
	return I18n{EnUS: v, He: v}
}

// CredentialField describes one input of the provider credential form.
type CredentialField struct {
	Variable    string  `json:"variable"`
	Label       I18n    `json:"label"`
	Type        string  `json:"type"`
	Required    bool    `json:"required"`
	Default     *string `json:"default,omitempty"`
	Placeholder I18n    `json:"placeholder"`
}

// CredentialSchema wraps the credential form fields the way the host
// framework nests them.
type CredentialSchema struct {
	CredentialFormSchemas []CredentialField `json:"credential_form_schemas"`
}

// ProviderSchema is the top-level provider descriptor.
type ProviderSchema struct {
	Provider            string           `json:"provider"`
	Label               I18n             `json:"label"`
	Description         I18n             `json:"description"`
	IconSmall           I18n             `json:"icon_small"`
	IconLarge           I18n             `json:"icon_large"`
	SupportedModelTypes []string         `json:"supported_model_types"`
	ConfigurateMethods  []string         `json:"configurate_methods"`
	CredentialSchema    CredentialSchema `json:"provider_credential_schema"`
}

// JSON renders the schema as indented JSON.
func (p ProviderSchema) JSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Provider returns the descriptor for the Vertex AI integration. Labels and
// placeholders carry Hebrew alongside English.
func Provider() ProviderSchema {
	return ProviderSchema{
		Provider:            ProviderName,
		Label:               Uniform("Google Vertex AI"),
		Description:         Bilingual("Google Cloud Vertex AI with Gemini models and Hebrew support", "Google Cloud Vertex AI עם מודלי Gemini ותמיכה בעברית"),
		IconSmall:           Uniform("google.svg"),
		IconLarge:           Uniform("google.svg"),
		SupportedModelTypes: []string{"llm", "chat", "text-generation"},
		ConfigurateMethods:  []string{"predefined-model"},
		CredentialSchema: CredentialSchema{
			CredentialFormSchemas: []CredentialField{
				{
					Variable:    "project_id",
					Label:       Bilingual("GCP Project ID", "מזהה פרויקט GCP"),
					Type:        "text-input",
					Required:    true,
					Placeholder: Bilingual("Enter your GCP project ID", "הכנס את מזהה הפרויקט שלך ב-GCP"),
				},
				{
					Variable:    "location",
					Label:       Bilingual("Region", "אזור"),
					Type:        "text-input",
					Required:    false,
					Default:     swag.String("us-east1"),
					Placeholder: Bilingual("GCP region (default: us-east1)", "אזור GCP (ברירת מחדל: us-east1)"),
				},
				{
					Variable:    "service_account_key",
					Label:       Bilingual("Service Account Key", "מפתח חשבון שירות"),
					Type:        "secret-input",
					Required:    false,
					Placeholder: Bilingual("Service account JSON key or file path", "מפתח JSON של חשבון שירות או נתיב קובץ"),
				},
			},
		},
	}
}
