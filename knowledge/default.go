package knowledge

// DefaultBase returns the built-in knowledge base for the UCC Campus Pasto
// academic catalog. Categories, scenarios and templates use Spanish
// identifiers and phrases because that is the language the catalog and the
// incoming queries are written in.
//
// The returned base is already validated.
func DefaultBase() *Base {
	base := &Base{
		Categories: []Category{
			{
				ID: "ingenieria_software",
				Keywords: []string{
					"ingeniería de software", "desarrollo de software", "programación", "algoritmos",
					"estructuras de datos", "bases de datos", "sistemas operativos", "redes",
					"seguridad informática", "inteligencia artificial", "machine learning",
					"python", "java", "javascript", "c++", "desarrollo web", "desarrollo móvil",
					"devops", "cloud computing", "álgebra lineal", "cálculo integral",
					"física mecánica", "ingeniería de requisitos", "aspectos administrativos",
					"clean code", "design patterns", "introduction to algorithms",
				},
			},
			{
				ID: "enfermeria",
				Keywords: []string{
					"enfermería", "cuidados de enfermería", "historia del cuidado", "sociología del cuidado",
					"antropología del cuidado", "sistemas de soporte", "biogenética", "procesos bioquímicos",
					"farmacocinética", "farmacodinamia", "cuidados al adulto", "vigilancia epidemiológica",
					"gerencia del cuidado", "fundamentos de enfermería", "farmacología en enfermería",
					"semiología médica", "bioquímica médica", "microbiología médica", "psicología en enfermería",
				},
			},
			{
				ID: "medicina",
				Keywords: []string{
					"medicina", "semiología clínica", "ayudas diagnósticas", "deontología médica",
					"investigación médica", "inglés médico", "harrison", "guyton", "fisiología médica",
					"patología general", "robbins", "semiología médica", "farmacología básica",
					"katzung", "medicina interna", "pediatría", "cirugía", "ginecología",
				},
			},
			{
				ID: "odontologia",
				Keywords: []string{
					"odontología", "salud oral", "cirugía maxilofacial", "promoción de salud",
					"prevención en salud", "patología oral", "bases quirúrgicas", "cariología",
					"semiología", "farmacoterapia odontológica", "urgencias odontológicas",
					"patología oral y maxilofacial", "nevilla", "periodontología", "carranza",
					"endodoncia", "ingle", "ortodoncia", "proffit", "cirugía oral",
				},
			},
			{
				ID: "derecho",
				Keywords: []string{
					"derecho", "teoría del estado", "derechos humanos", "DIH", "constitución",
					"derecho civil", "derecho penal", "derecho procesal", "derecho laboral",
					"seguridad social", "derecho administrativo", "derecho comercial",
					"consultorio jurídico", "kelsen", "derecho constitucional",
					"aragón", "zaffaroni", "ospina", "palacio", "derecho internacional", "remiro",
				},
			},
			{
				ID: "matematicas",
				Keywords: []string{
					"matemáticas", "cálculo", "álgebra", "geometría", "estadística", "probabilidad",
					"álgebra lineal", "cálculo integral", "física mecánica",
				},
			},
			{
				ID: "administracion",
				Keywords: []string{
					"administración", "contabilidad", "finanzas", "marketing", "economía",
					"gestión empresarial", "emprendimiento", "recursos humanos",
				},
			},
		},
		Scenarios: []Scenario{
			{ID: "pregrado_inicio", Keywords: []string{"primer semestre", "inicio de carrera", "principiante", "básico"}},
			{ID: "práctica_laboratorio", Keywords: []string{"práctica", "laboratorio", "experimentos", "práctica clínica"}},
			{ID: "investigación", Keywords: []string{"tesis", "investigación", "proyecto de grado", "monografía"}},
			{ID: "profesionalización", Keywords: []string{"empleo", "práctica profesional", "pasantía", "empleabilidad"}},
			{ID: "especialización", Keywords: []string{"especialización", "maestría", "posgrado", "doctorado"}},
		},
		// Rule order is the fallback priority: an earlier rule beats every
		// later one when both match a query.
		Rules: []Rule{
			{Category: "medicina", Keywords: []string{
				"medicina", "anatomía", "fisiología", "patología", "cardiología",
				"enfermería", "clínica", "hospital", "paciente", "diagnóstico",
			}},
			{Category: "ingenieria_software", Keywords: []string{
				"programación", "python", "java", "javascript", "algoritmo",
				"software", "desarrollo", "código", "programar",
			}},
			{Category: "matematicas", Keywords: []string{
				"cálculo", "álgebra", "geometría", "ecuaciones", "matemáticas",
			}},
			{Category: "derecho", Keywords: []string{
				"derecho", "jurídico", "ley", "constitucional", "penal", "civil",
			}},
			{Category: "administracion", Keywords: []string{
				"administración", "contabilidad", "finanzas", "marketing", "empresa",
			}},
		},
		Templates: []Template{
			{
				Category:        "ingenieria_software",
				RelatedSubjects: []string{"Algoritmos", "Estructuras de Datos", "Bases de Datos"},
				TypicalProducts: []string{"Libros de programación", "Licencias de software", "Equipos de desarrollo"},
				ScenarioTips: map[string][]string{
					"pregrado_inicio": {
						"Comienza con fundamentos de programación",
						"No te preocupes si eres principiante, todos empezamos así",
						"Busca libros como 'Clean Code' para buenas prácticas",
					},
					"práctica_laboratorio": {
						"Necesitarás una buena laptop para desarrollo",
						"Considera equipos como Raspberry Pi para IoT",
						"Busca licencias de IDEs y software de desarrollo",
					},
				},
			},
			{
				Category:        "enfermeria",
				RelatedSubjects: []string{"Cuidados Básicos", "Farmacología", "Semiología"},
				TypicalProducts: []string{"Estetoscopios", "Esfigmomanómetros", "Kits de venopunción"},
				ScenarioTips: map[string][]string{
					"práctica_laboratorio": {
						"Busca maniquíes de práctica para simulación",
						"Los equipos de monitoreo vital son esenciales",
						"Considera libros de farmacología para enfermería",
					},
				},
			},
			{
				Category:        "medicina",
				RelatedSubjects: []string{"Semiología", "Fisiología", "Farmacología"},
				TypicalProducts: []string{"Estetoscopios", "Otoscopios", "Kits de diagnóstico"},
				ScenarioTips: map[string][]string{
					"investigación": {
						"Busca libros de investigación médica",
						"Considera equipos para ayudas diagnósticas",
						"Material de inglés médico puede ser útil",
					},
				},
			},
			{
				Category:        "odontologia",
				RelatedSubjects: []string{"Patología Oral", "Cirugía", "Periodoncia"},
				TypicalProducts: []string{"Equipos odontológicos", "Instrumental quirúrgico", "Modelos anatómicos"},
				ScenarioTips: map[string][]string{
					"práctica_laboratorio": {
						"Busca turbinas y micromotores para práctica",
						"Los esterilizadores son indispensables",
						"Considera software de planificación dental",
					},
				},
			},
			{
				Category:        "derecho",
				RelatedSubjects: []string{"Constitucional", "Penal", "Civil"},
				TypicalProducts: []string{"Códigos civiles", "Gacetas judiciales", "Software jurídico"},
				ScenarioTips: map[string][]string{
					"profesionalización": {
						"Busca oportunidades de consultorio jurídico",
						"Considera equipos de audio para grabaciones",
						"Bases de datos legales son muy útiles",
					},
				},
			},
		},
	}

	if err := base.Validate(); err != nil {
		// The built-in base is covered by tests; a validation failure here
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return base
}
