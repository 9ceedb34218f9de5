package scheduling

import (
	"strings"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

// DefaultDurationMinutes is the salon-wide fallback for service names no
// rule or configured service matches.
const DefaultDurationMinutes = 60

// durationRules is the ordered keyword table used for free-text service
// names. First matching rule wins; order is the declaration order below,
// so "هیرکات رنگ" resolves as a haircut, not a coloring.
type durationRule struct {
	keywords []string
	minutes  int
}

var durationRules = []durationRule{
	{keywords: []string{"هیرکات", "haircut", "cut"}, minutes: 30},
	{keywords: []string{"رنگ", "color"}, minutes: 120},
	{keywords: []string{"پدیکور", "pedicure"}, minutes: 60},
	{keywords: []string{"vip", "عروس", "bridal"}, minutes: 120},
}

// ServiceCatalog maps service names and ids to canonical durations.
// Configured salon services take precedence over the keyword table;
// lookups never fail, unmatched input gets the default duration.
type ServiceCatalog struct {
	byID   map[uint]int
	byName map[string]int
}

func NewServiceCatalog(services []models.Service) *ServiceCatalog {
	c := &ServiceCatalog{
		byID:   make(map[uint]int, len(services)),
		byName: make(map[string]int, len(services)),
	}

	for _, s := range services {
		if s.DurationMin <= 0 {
			continue
		}
		c.byID[s.ID] = s.DurationMin
		c.byName[strings.ToLower(strings.TrimSpace(s.Name))] = s.DurationMin
	}

	return c
}

// DurationFor resolves a free-text service name to minutes.
func (c *ServiceCatalog) DurationFor(name string) int {
	needle := strings.ToLower(strings.TrimSpace(name))

	if min, ok := c.byName[needle]; ok {
		return min
	}

	for _, rule := range durationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(needle, kw) {
				return rule.minutes
			}
		}
	}

	return DefaultDurationMinutes
}

// DurationForID resolves a configured service id to minutes.
func (c *ServiceCatalog) DurationForID(id uint) (int, bool) {
	min, ok := c.byID[id]
	return min, ok
}
