package i18n

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"obleafusion/internal/shared/logger"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

// Section names a nested enum lookup map of a Table.
type Section string

const (
	SectionEventTypes      Section = "eventTypes"
	SectionServiceTypes    Section = "serviceTypes"
	SectionReferralSources Section = "referralSources"
)

// Calendar holds the names needed to render a long-form date.
type Calendar struct {
	Weekdays []string `yaml:"weekdays"`
	Months   []string `yaml:"months"`
	LongDate string   `yaml:"longDate"`
}

// ContactCopy is the static copy of the contact notification.
type ContactCopy struct {
	Subject       string `yaml:"subject"`
	Title         string `yaml:"title"`
	Intro         string `yaml:"intro"`
	Message       string `yaml:"message"`
	ContactClient string `yaml:"contactClient"`
	Persuasion    string `yaml:"persuasion"`
	ReplySubject  string `yaml:"replySubject"`
}

// Table is the translation table of one language. Tables are read-only once
// loaded and shared by all requests.
type Table struct {
	Lang Lang `yaml:"-"`

	Subject           string `yaml:"subject"`
	Title             string `yaml:"title"`
	Greeting          string `yaml:"greeting"`
	NewBooking        string `yaml:"newBooking"`
	ClientDetails     string `yaml:"clientDetails"`
	Name              string `yaml:"name"`
	Email             string `yaml:"email"`
	Phone             string `yaml:"phone"`
	EventDetails      string `yaml:"eventDetails"`
	EventType         string `yaml:"eventType"`
	Date              string `yaml:"date"`
	Time              string `yaml:"time"`
	Duration          string `yaml:"duration"`
	Hours             string `yaml:"hours"`
	Guests            string `yaml:"guests"`
	ServiceDetails    string `yaml:"serviceDetails"`
	ServiceType       string `yaml:"serviceType"`
	Desserts          string `yaml:"desserts"`
	Budget            string `yaml:"budget"`
	Location          string `yaml:"location"`
	Address           string `yaml:"address"`
	AdditionalInfo    string `yaml:"additionalInfo"`
	Comments          string `yaml:"comments"`
	ReferralSource    string `yaml:"referralSource"`
	Footer            string `yaml:"footer"`
	ContactClient     string `yaml:"contactClient"`
	ReplySubject      string `yaml:"replySubject"`
	AllRightsReserved string `yaml:"allRightsReserved"`

	EventTypes      map[string]string `yaml:"eventTypes"`
	ServiceTypes    map[string]string `yaml:"serviceTypes"`
	ReferralSources map[string]string `yaml:"referralSources"`

	Calendar Calendar    `yaml:"calendar"`
	Contact  ContactCopy `yaml:"contact"`
}

// Lookup returns the display label for key in the given section.
// It is safe to call on a nil table or a table with missing sections.
func (t *Table) Lookup(section Section, key string) (string, bool) {
	if t == nil || key == "" {
		return "", false
	}

	var m map[string]string
	switch section {
	case SectionEventTypes:
		m = t.EventTypes
	case SectionServiceTypes:
		m = t.ServiceTypes
	case SectionReferralSources:
		m = t.ReferralSources
	}

	label, ok := m[key]
	if !ok || label == "" {
		return "", false
	}
	return label, true
}

var (
	tablesOnce  sync.Once
	tables      map[Lang]*Table
	overrideDir string
	loadLogger  logger.Interface
)

// Init loads the translation tables, merging <lang>.yaml files found in dir
// over the embedded ones. It must be called before serving requests; later
// calls have no effect. GetTable loads the embedded tables on first use when
// Init was never called.
func Init(dir string, log logger.Interface) {
	overrideDir = dir
	loadLogger = log
	tablesOnce.Do(load)
}

// GetTable returns the table for a raw language value. Unsupported or missing
// values resolve to the Spanish table; the result is never nil.
func GetTable(lang string) *Table {
	return TableFor(ParseLang(lang))
}

// TableFor returns the table for a parsed language.
func TableFor(lang Lang) *Table {
	tablesOnce.Do(load)
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLang]
}

func load() {
	log := loadLogger
	if log == nil {
		log = logger.NewLogger()
	}
	tables = loadTables(overrideDir, log)
}

func loadTables(dir string, log logger.Interface) map[Lang]*Table {
	overrides := NewOverrideLoader(dir, log)
	if err := overrides.Load(); err != nil {
		log.Warnw("failed to load translation overrides, using embedded tables", "error", err)
	}

	loaded := make(map[Lang]*Table, 2)
	for _, lang := range []Lang{ES, EN} {
		base, err := parseEmbedded(lang)
		if err != nil {
			// Embedded tables are part of the binary; failing here is a build defect.
			panic(fmt.Sprintf("i18n: invalid embedded table %q: %v", lang, err))
		}

		if content, ok := overrides.Get(lang); ok {
			merged, err := parseEmbedded(lang)
			if err == nil {
				err = yaml.Unmarshal(content, merged)
			}
			if err != nil {
				log.Warnw("ignoring malformed translation override", "lang", lang, "error", err)
			} else {
				merged.Lang = lang
				base = merged
			}
		}

		loaded[lang] = base
	}
	return loaded
}

func parseEmbedded(lang Lang) (*Table, error) {
	content, err := embeddedTables.ReadFile("tables/" + string(lang) + ".yaml")
	if err != nil {
		return nil, err
	}
	t := &Table{}
	if err := yaml.Unmarshal(content, t); err != nil {
		return nil, err
	}
	t.Lang = lang
	return t, nil
}
