package iso20022

import "strings"

// MessageSet identifies an ISO 20022 business area, the four-letter prefix
// of a message definition identifier such as "pain.001.001.12".
type MessageSet string

// Supported message sets.
const (
	// Acmt is Account Management.
	Acmt MessageSet = "acmt"
	// Admi is Administration.
	Admi MessageSet = "admi"
	// Auth is Authorities.
	Auth MessageSet = "auth"
	// Camt is Cash Management.
	Camt MessageSet = "camt"
	// Pacs is Payments Clearing and Settlement.
	Pacs MessageSet = "pacs"
	// Pain is Payments Initiation.
	Pain MessageSet = "pain"
	// Reda is Reference Data.
	Reda MessageSet = "reda"
	// Remt is Payments Remittance Advice.
	Remt MessageSet = "remt"
)

// String returns the business-area prefix.
func (s MessageSet) String() string {
	return string(s)
}

// IsValid returns true if this is a supported message set.
func (s MessageSet) IsValid() bool {
	switch s {
	case Acmt, Admi, Auth, Camt, Pacs, Pain, Reda, Remt:
		return true
	default:
		return false
	}
}

// setConfig holds per-set descriptive configuration.
type setConfig struct {
	Name string
}

var setConfigs = map[MessageSet]setConfig{
	Acmt: {Name: "Account Management"},
	Admi: {Name: "Administration"},
	Auth: {Name: "Authorities"},
	Camt: {Name: "Cash Management"},
	Pacs: {Name: "Payments Clearing and Settlement"},
	Pain: {Name: "Payments Initiation"},
	Reda: {Name: "Reference Data"},
	Remt: {Name: "Payments Remittance Advice"},
}

// Name returns a human-readable business-area name, or "" if unknown.
func (s MessageSet) Name() string {
	return setConfigs[s].Name
}

// SetOf derives the message set from a message definition identifier,
// e.g. SetOf("pain.001.001.12") == Pain. Returns "" for identifiers that
// do not carry a known prefix.
func SetOf(identifier string) MessageSet {
	prefix, _, ok := strings.Cut(identifier, ".")
	if !ok {
		return ""
	}
	if s := MessageSet(prefix); s.IsValid() {
		return s
	}
	return ""
}

// NamespaceURI returns the XML namespace for a message definition
// identifier, e.g. "urn:iso:std:iso:20022:tech:xsd:pain.001.001.12".
func NamespaceURI(identifier string) string {
	return "urn:iso:std:iso:20022:tech:xsd:" + identifier
}
