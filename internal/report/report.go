// Package report assembles and formats IP enrichment reports.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/strutfield/ipenrich/internal/lookup"
)

const ruleWidth = 60

// Report holds the outcome of both enrichment lookups for one IP address.
// A failed lookup leaves its record nil and its error set; rendering turns
// the error into a human-readable line in place of the missing section.
type Report struct {
	IP        string
	Generated time.Time

	Geo    *lookup.GeoRecord
	GeoErr error

	Reg    *lookup.RegistrationRecord
	RegErr error
}

// Gather runs both lookups for ip. Lookup failures are captured in the
// report rather than returned; the report itself always exists.
func Gather(ctx context.Context, c lookup.Client, ip string) *Report {
	r := &Report{IP: ip, Generated: time.Now()}
	r.Geo, r.GeoErr = c.Geolocation(ctx, ip)
	r.Reg, r.RegErr = c.Registration(ctx, ip)
	return r
}

// Text renders the report in the sectioned plain-text layout used by the
// one-shot CLI.
func (r *Report) Text() string {
	var b strings.Builder

	section(&b, "IP ENRICHMENT REPORT", '=')
	fmt.Fprintf(&b, "Generated: %s\n", r.Generated.Format("2006-01-02 15:04:05"))

	section(&b, "GEOLOCATION DATA", '-')
	if r.GeoErr != nil {
		fmt.Fprintf(&b, "Error fetching geolocation data: %s\n", r.GeoErr)
	} else {
		r.writeGeoText(&b)
	}

	section(&b, "WHOIS REGISTRATION DATA", '-')
	if r.RegErr != nil {
		fmt.Fprintf(&b, "Error fetching registration data: %s\n", r.RegErr)
	} else {
		r.writeRegText(&b)
	}

	return b.String()
}

func section(b *strings.Builder, title string, char byte) {
	rule := strings.Repeat(string(char), ruleWidth)
	fmt.Fprintf(b, "%s\n%s\n%s\n", rule, title, rule)
}

// field writes a label/value pair with the label padded so values align.
// Empty values render as N/A.
func field(b *strings.Builder, label, value string) {
	if value == "" {
		value = "N/A"
	}
	fmt.Fprintf(b, "%-18s%s\n", label+":", value)
}

// subfield is field with the two-space indent used for nested records;
// empty values are skipped rather than shown as N/A.
func subfield(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %-16s%s\n", label+":", value)
}

func (r *Report) writeGeoText(b *strings.Builder) {
	g := r.Geo
	field(b, "IP Address", g.IP)
	if g.Hostname != "" {
		field(b, "Hostname", g.Hostname)
	}
	field(b, "City", g.City)
	field(b, "Region", g.Region)
	field(b, "Country", g.Country)
	field(b, "Location", g.Loc)
	field(b, "Postal Code", g.Postal)
	field(b, "Timezone", g.Timezone)
	field(b, "Organization", g.Org)

	if g.ASN != nil {
		fmt.Fprintln(b, "ASN Information:")
		subfield(b, "ASN", g.ASN.ASN)
		subfield(b, "Name", g.ASN.Name)
		subfield(b, "Domain", g.ASN.Domain)
		subfield(b, "Route", g.ASN.Route)
		subfield(b, "Type", g.ASN.Type)
	}
	if g.Company != nil {
		fmt.Fprintln(b, "Company:")
		subfield(b, "Name", g.Company.Name)
		subfield(b, "Domain", g.Company.Domain)
		subfield(b, "Type", g.Company.Type)
	}
	if g.Privacy != nil {
		fmt.Fprintln(b, "Privacy/Proxy:")
		subfield(b, "VPN", boolWord(g.Privacy.VPN))
		subfield(b, "Proxy", boolWord(g.Privacy.Proxy))
		subfield(b, "Tor", boolWord(g.Privacy.Tor))
		subfield(b, "Relay", boolWord(g.Privacy.Relay))
		subfield(b, "Hosting", boolWord(g.Privacy.Hosting))
	}
}

func (r *Report) writeRegText(b *strings.Builder) {
	reg := r.Reg
	field(b, "IP Details", reg.IP)
	if reg.StartAddress != "" && reg.EndAddress != "" {
		subfield(b, "IP Range", reg.StartAddress+" - "+reg.EndAddress)
	}
	subfield(b, "CIDR", reg.CIDR)
	subfield(b, "Type", reg.Type)
	if reg.Registrar != "" {
		field(b, "Registrar", reg.Registrar)
	}
	if reg.Organization != "" {
		field(b, "Organization", reg.Organization)
	}
	if reg.Registrant != "" {
		field(b, "Registrant", reg.Registrant)
	}
	subfield(b, "Address", reg.Address)
	subfield(b, "Country", reg.Country)
	if reg.Created != "" {
		field(b, "Created", reg.Created)
	}
	if reg.Expires != "" {
		field(b, "Expires", reg.Expires)
	}
	if reg.Updated != "" {
		field(b, "Updated", reg.Updated)
	}
	if len(reg.Statuses) > 0 {
		fmt.Fprintln(b, "Statuses:")
		for _, s := range reg.Statuses {
			fmt.Fprintf(b, "  - %s\n", s)
		}
	}
}

// Markdown renders the report as markdown for the TUI's glamour renderer.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# IP Enrichment: %s\n\n", r.IP)

	fmt.Fprintln(&b, "## Geolocation")
	fmt.Fprintln(&b)
	if r.GeoErr != nil {
		fmt.Fprintf(&b, "Error fetching geolocation data: %s\n", r.GeoErr)
	} else {
		g := r.Geo
		mdField(&b, "Hostname", g.Hostname)
		mdField(&b, "City", g.City)
		mdField(&b, "Region", g.Region)
		mdField(&b, "Country", g.Country)
		mdField(&b, "Location", g.Loc)
		mdField(&b, "Postal Code", g.Postal)
		mdField(&b, "Timezone", g.Timezone)
		mdField(&b, "Organization", g.Org)
		if g.ASN != nil {
			mdField(&b, "ASN", strings.TrimSpace(g.ASN.ASN+" "+g.ASN.Name))
		}
		if g.Privacy != nil {
			mdField(&b, "Privacy flags", privacySummary(g.Privacy))
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Registration")
	fmt.Fprintln(&b)
	if r.RegErr != nil {
		fmt.Fprintf(&b, "Error fetching registration data: %s\n", r.RegErr)
	} else {
		reg := r.Reg
		if reg.StartAddress != "" && reg.EndAddress != "" {
			mdField(&b, "IP Range", reg.StartAddress+" - "+reg.EndAddress)
		}
		mdField(&b, "CIDR", reg.CIDR)
		mdField(&b, "Type", reg.Type)
		mdField(&b, "Registrar", reg.Registrar)
		mdField(&b, "Organization", reg.Organization)
		mdField(&b, "Registrant", reg.Registrant)
		mdField(&b, "Address", reg.Address)
		mdField(&b, "Country", reg.Country)
		mdField(&b, "Created", reg.Created)
		mdField(&b, "Updated", reg.Updated)
		mdField(&b, "Expires", reg.Expires)
		if len(reg.Statuses) > 0 {
			mdField(&b, "Statuses", strings.Join(reg.Statuses, ", "))
		}
	}

	return b.String()
}

func mdField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, value)
}

func privacySummary(p *lookup.PrivacyInfo) string {
	var flags []string
	if p.VPN {
		flags = append(flags, "vpn")
	}
	if p.Proxy {
		flags = append(flags, "proxy")
	}
	if p.Tor {
		flags = append(flags, "tor")
	}
	if p.Relay {
		flags = append(flags, "relay")
	}
	if p.Hosting {
		flags = append(flags, "hosting")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, ", ")
}

func boolWord(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
