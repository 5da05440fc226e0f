package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RDAP wire types. Only the fields the registration record needs are
// decoded; registries attach plenty more that we ignore.

type rdapEvent struct {
	Action string `json:"eventAction"`
	Date   string `json:"eventDate"`
}

type rdapEntity struct {
	Handle     string          `json:"handle"`
	Roles      []string        `json:"roles"`
	VCardArray json.RawMessage `json:"vcardArray"`
	Entities   []rdapEntity    `json:"entities"`
}

type rdapCIDR struct {
	V4Prefix string `json:"v4prefix"`
	V6Prefix string `json:"v6prefix"`
	Length   int    `json:"length"`
}

type rdapNetwork struct {
	Handle       string       `json:"handle"`
	StartAddress string       `json:"startAddress"`
	EndAddress   string       `json:"endAddress"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Country      string       `json:"country"`
	ParentHandle string       `json:"parentHandle"`
	Port43       string       `json:"port43"`
	Status       []string     `json:"status"`
	Events       []rdapEvent  `json:"events"`
	Entities     []rdapEntity `json:"entities"`
	CIDRs        []rdapCIDR   `json:"cidr0_cidrs"`
}

func (c *client) Registration(ctx context.Context, ip string) (*RegistrationRecord, error) {
	return doWithRetry(ctx, c, "registration",
		func(ctx context.Context) (*http.Response, error) {
			httpReq, err := http.NewRequestWithContext(ctx, "GET", c.rdapBaseURL+"/ip/"+ip, nil)
			if err != nil {
				return nil, fmt.Errorf("creating request: %w", err)
			}
			httpReq.Header.Set("Accept", "application/rdap+json")
			return c.httpClient.Do(httpReq)
		},
		func(resp *http.Response) (*RegistrationRecord, error) {
			defer resp.Body.Close()
			var network rdapNetwork
			if err := json.NewDecoder(resp.Body).Decode(&network); err != nil {
				return nil, fmt.Errorf("decoding response: %w", err)
			}
			return newRegistrationRecord(ip, &network), nil
		},
	)
}

// newRegistrationRecord maps an RDAP IP-network object onto the normalized
// whois-style record. Every field is best effort; registries differ in
// which of them they populate.
func newRegistrationRecord(ip string, n *rdapNetwork) *RegistrationRecord {
	rec := &RegistrationRecord{
		IP:           ip,
		StartAddress: n.StartAddress,
		EndAddress:   n.EndAddress,
		CIDR:         joinCIDRs(n.CIDRs),
		Type:         n.Type,
		Country:      n.Country,
		Registrar:    registrarFor(n),
		Organization: n.Name,
		Statuses:     append([]string(nil), n.Status...),
	}

	for _, ev := range n.Events {
		date := NormalizeDate(ev.Date)
		if date == "" {
			continue
		}
		switch strings.ToLower(ev.Action) {
		case "registration", "created", "announcement":
			if rec.Created == "" {
				rec.Created = date
			}
		case "last changed", "last update", "updated":
			if rec.Updated == "" {
				rec.Updated = date
			}
		case "expiration", "expires":
			// Rare in IP RDAP, but capture when present.
			if rec.Expires == "" {
				rec.Expires = date
			}
		}
	}

	if entity := preferredEntity(n.Entities); entity != nil {
		name, address := parseVCard(entity.VCardArray)
		rec.Registrant = name
		rec.Address = address
	}

	return rec
}

// registrarFor derives the registry identity: the RIR from the whois host
// when present, otherwise the parent or network handle.
func registrarFor(n *rdapNetwork) string {
	if n.Port43 != "" {
		// e.g. "whois.arin.net" -> "arin"
		parts := strings.Split(n.Port43, ".")
		if len(parts) >= 2 {
			return parts[1]
		}
	}
	if n.ParentHandle != "" {
		return n.ParentHandle
	}
	return n.Handle
}

// preferredEntity picks the entity most likely to describe the registrant:
// a registrant/administrative/technical role if any, else the first entity.
func preferredEntity(entities []rdapEntity) *rdapEntity {
	for i := range entities {
		for _, role := range entities[i].Roles {
			switch strings.ToLower(role) {
			case "registrant", "administrative", "technical":
				return &entities[i]
			}
		}
	}
	if len(entities) > 0 {
		return &entities[0]
	}
	return nil
}

func joinCIDRs(cidrs []rdapCIDR) string {
	var parts []string
	for _, c := range cidrs {
		prefix := c.V4Prefix
		if prefix == "" {
			prefix = c.V6Prefix
		}
		if prefix == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s/%d", prefix, c.Length))
	}
	return strings.Join(parts, ", ")
}

// parseVCard extracts the formatted name and address label from a jCard
// (RFC 7095) array: ["vcard", [[name, params, type, value], ...]].
func parseVCard(raw json.RawMessage) (name, address string) {
	if len(raw) == 0 {
		return "", ""
	}

	var outer []json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil || len(outer) < 2 {
		return "", ""
	}

	var properties []json.RawMessage
	if err := json.Unmarshal(outer[1], &properties); err != nil {
		return "", ""
	}

	for _, prop := range properties {
		var fields []json.RawMessage
		if err := json.Unmarshal(prop, &fields); err != nil || len(fields) < 4 {
			continue
		}

		var propName string
		if err := json.Unmarshal(fields[0], &propName); err != nil {
			continue
		}

		switch propName {
		case "fn":
			var value string
			if err := json.Unmarshal(fields[3], &value); err == nil && name == "" {
				name = value
			}
		case "adr":
			var params struct {
				Label string `json:"label"`
			}
			if err := json.Unmarshal(fields[1], &params); err == nil && address == "" {
				address = strings.ReplaceAll(params.Label, "\n", ", ")
			}
		}
	}

	return name, address
}
