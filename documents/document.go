/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

// Document represents a document for introducing goods into circulation.
// Field names follow the registry API.
type Document struct {
	Description    Description `json:"description" yaml:"description"`
	DocID          string      `json:"doc_id" yaml:"doc_id"`
	DocStatus      string      `json:"doc_status" yaml:"doc_status"`
	DocType        string      `json:"doc_type" yaml:"doc_type"`
	ImportRequest  bool        `json:"importRequest" yaml:"importRequest"`
	OwnerINN       string      `json:"owner_inn" yaml:"owner_inn"`
	ParticipantINN string      `json:"participant_inn" yaml:"participant_inn"`
	ProducerINN    string      `json:"producer_inn" yaml:"producer_inn"`
	ProductionDate string      `json:"production_date" yaml:"production_date"`
	ProductionType string      `json:"production_type" yaml:"production_type"`
	Products       []Product   `json:"products" yaml:"products"`
	RegDate        string      `json:"reg_date" yaml:"reg_date"`
	RegNumber      string      `json:"reg_number" yaml:"reg_number"`
}

// Description holds the document description.
type Description struct {
	ParticipantINN string `json:"participantInn" yaml:"participantInn"`
}

// Product represents a single product of the document.
type Product struct {
	CertificateDocument       string `json:"certificate_document" yaml:"certificate_document"`
	CertificateDocumentDate   string `json:"certificate_document_date" yaml:"certificate_document_date"`
	CertificateDocumentNumber string `json:"certificate_document_number" yaml:"certificate_document_number"`
	OwnerINN                  string `json:"owner_inn" yaml:"owner_inn"`
	ProducerINN               string `json:"producer_inn" yaml:"producer_inn"`
	ProductionDate            string `json:"production_date" yaml:"production_date"`
	TNVEDCode                 string `json:"tnved_code" yaml:"tnved_code"`
	UITCode                   string `json:"uit_code" yaml:"uit_code"`
	UITUCode                  string `json:"uitu_code" yaml:"uitu_code"`
}

// NewSampleDocument returns a filled document that may be used as a template.
func NewSampleDocument() *Document {
	return &Document{
		Description:    Description{ParticipantINN: "1234567890"},
		DocID:          "12345",
		DocStatus:      "NEW",
		DocType:        "LP_INTRODUCE_GOODS",
		ImportRequest:  true,
		OwnerINN:       "0987654321",
		ParticipantINN: "1234567890",
		ProducerINN:    "1234567890",
		ProductionDate: "2020-01-23",
		ProductionType: "MANUFACTURING",
		Products: []Product{{
			CertificateDocument:       "CERT12345",
			CertificateDocumentDate:   "2020-01-23",
			CertificateDocumentNumber: "CERT12345",
			OwnerINN:                  "0987654321",
			ProducerINN:               "1234567890",
			ProductionDate:            "2020-01-23",
			TNVEDCode:                 "12345678",
			UITCode:                   "UIT123456",
			UITUCode:                  "UITU123456",
		}},
		RegDate:   "2020-01-23",
		RegNumber: "REG12345",
	}
}
