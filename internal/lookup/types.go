// Package lookup provides the geolocation and registration lookup clients.
package lookup

import "time"

// ASNInfo holds autonomous-system details from the geolocation service.
type ASNInfo struct {
	ASN    string `json:"asn"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Route  string `json:"route"`
	Type   string `json:"type"`
}

// CompanyInfo holds the organization operating the address block.
type CompanyInfo struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Type   string `json:"type"`
}

// PrivacyInfo holds anonymization/proxy detection flags.
type PrivacyInfo struct {
	VPN     bool `json:"vpn"`
	Proxy   bool `json:"proxy"`
	Tor     bool `json:"tor"`
	Relay   bool `json:"relay"`
	Hosting bool `json:"hosting"`
}

// GeoRecord is a structured geolocation result. The optional sub-records
// are only populated on token-authenticated plans that include them.
type GeoRecord struct {
	IP       string       `json:"ip"`
	Hostname string       `json:"hostname"`
	City     string       `json:"city"`
	Region   string       `json:"region"`
	Country  string       `json:"country"`
	Loc      string       `json:"loc"`
	Postal   string       `json:"postal"`
	Timezone string       `json:"timezone"`
	Org      string       `json:"org"`
	ASN      *ASNInfo     `json:"asn,omitempty"`
	Company  *CompanyInfo `json:"company,omitempty"`
	Privacy  *PrivacyInfo `json:"privacy,omitempty"`
}

// RegistrationRecord is a normalized registration (whois-style) result
// derived from an RDAP IP-network response. Date fields are normalized to
// YYYY-MM-DD where possible; absent fields are empty strings.
type RegistrationRecord struct {
	IP           string
	StartAddress string
	EndAddress   string
	CIDR         string
	Type         string
	Country      string
	Registrar    string
	Organization string
	Registrant   string
	Address      string
	Created      string
	Updated      string
	Expires      string
	Statuses     []string
}

// dateLayouts are the timestamp formats RDAP registries are known to emit.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05-0700",
}

// NormalizeDate reduces an RDAP/ISO timestamp to YYYY-MM-DD. Unparseable
// values fall back to the raw string so the caller never loses data.
func NormalizeDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}
