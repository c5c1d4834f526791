package domain

// Estilos de expresion emocional que parametrizan el ajuste cultural.
const (
	ExpressionExpressive = "expressive"
	ExpressionReserved   = "reserved"
	ExpressionAdaptive   = "adaptive"
)

// DefaultCulture es el nombre del perfil de respaldo obligatorio.
const DefaultCulture = "default"

// CulturalProfile agrupa parametros de estilo comunicacional por cultura.
// Inmutable despues de cargarse; se comparte entre sesiones sin lock.
type CulturalProfile struct {
	Name                string   `json:"name"`
	CommunicationStyle  string   `json:"communication_style"`
	EmotionalExpression string   `json:"emotional_expression"`
	TonePreference      string   `json:"tone_preference"`
	ConflictResponse    string   `json:"conflict_response"`
	SupportPreferences  []string `json:"support_preferences"`
	Values              []string `json:"values"`
}

// CultureRegistry resuelve nombres de cultura con fallback garantizado a default.
type CultureRegistry struct {
	profiles map[string]CulturalProfile
}

// NewCultureRegistry construye el registro; si falta default lo agrega.
func NewCultureRegistry(profiles ...CulturalProfile) *CultureRegistry {
	reg := &CultureRegistry{profiles: make(map[string]CulturalProfile, len(profiles))}
	for _, p := range profiles {
		reg.profiles[p.Name] = p
	}
	if _, ok := reg.profiles[DefaultCulture]; !ok {
		reg.profiles[DefaultCulture] = defaultProfile()
	}
	return reg
}

// Lookup devuelve el perfil registrado o el default si el nombre no existe.
// Nunca falla: un nombre desconocido no es un error de configuracion.
func (r *CultureRegistry) Lookup(name string) CulturalProfile {
	if p, ok := r.profiles[name]; ok {
		return p
	}
	return r.profiles[DefaultCulture]
}

// Has indica si el nombre esta registrado tal cual, sin fallback.
func (r *CultureRegistry) Has(name string) bool {
	_, ok := r.profiles[name]
	return ok
}

// LoadCulturalProfiles devuelve los perfiles incorporados: western, eastern y default.
func LoadCulturalProfiles() *CultureRegistry {
	return NewCultureRegistry(
		CulturalProfile{
			Name:                "western",
			CommunicationStyle:  "direct",
			EmotionalExpression: ExpressionExpressive,
			TonePreference:      "casual",
			ConflictResponse:    "confrontational",
			SupportPreferences:  []string{"practical_advice", "emotional_validation"},
			Values:              []string{"autonomy", "achievement", "openness"},
		},
		CulturalProfile{
			Name:                "eastern",
			CommunicationStyle:  "indirect",
			EmotionalExpression: ExpressionReserved,
			TonePreference:      "formal",
			ConflictResponse:    "avoidant",
			SupportPreferences:  []string{"group_harmony", "respectful_distance"},
			Values:              []string{"harmony", "respect", "duty"},
		},
		defaultProfile(),
	)
}

func defaultProfile() CulturalProfile {
	return CulturalProfile{
		Name:                DefaultCulture,
		CommunicationStyle:  "balanced",
		EmotionalExpression: ExpressionAdaptive,
		TonePreference:      "neutral",
		ConflictResponse:    "contextual",
		SupportPreferences:  []string{"empathetic_listening", "gentle_guidance"},
		Values:              []string{"adaptability", "understanding", "balance"},
	}
}
