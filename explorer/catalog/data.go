package catalog

// families is the reference data set, in declaration order.
// Pedagogical texts are shown verbatim by the front end.
func families() []Family {
	return []Family{
		{
			ID:          "linear",
			Name:        "Lineal",
			Category:    Algebraic,
			Formula:     "f(x) = mx + b",
			Description: "Una línea recta con pendiente constante m. Representa una relación de proporcionalidad directa con un desplazamiento.",
			Color:       "bg-orange-500",
			HexColor:    "#f97316",
			Params: []ParameterSpec{
				{ID: "m", Min: -5, Max: 5, Step: 0.5, Default: 1, Label: "Pendiente (m)"},
				{ID: "b", Min: -5, Max: 5, Step: 0.5, Default: 0, Label: "Intersección (b)"},
			},
			Rule:    RuleFunc(linear),
			Display: renderLinear,
			Example: Example{
				Problem:  "Si f(x) = 2x + 1, calcula f(3).",
				Solution: "Sustituimos x por 3: f(3) = 2(3) + 1 = 6 + 1 = 7.",
			},
			Quiz: Quiz{
				Question:      `¿Qué representa "b" en la función lineal f(x) = mx + b?`,
				Options:       []string{"La pendiente", "El punto de corte con el eje Y", "El punto de corte con el eje X", "El grado de la función"},
				CorrectAnswer: 1,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Costo de un Taxi",
				Description: "Un taxi cobra una tarifa base de $2.00 más $1.50 por cada kilómetro recorrido. Escribe la función y grafica el costo para 4 km.",
				Steps: []string{
					"Identificamos la tarifa base (b = 2) y el costo por km (m = 1.5).",
					"La función es f(x) = 1.5x + 2.",
					"Evaluamos para x = 4: f(4) = 1.5(4) + 2 = 6 + 2 = 8.",
					"El costo por 4 km es $8.00.",
				},
				GraphParams: map[string]float64{"m": 1.5, "b": 2},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Depreciación Lineal",
				Description: "Una máquina nueva cuesta $10. Se deprecia $2 por año. Escribe la función de su valor f(x) en función del tiempo x.",
				SolutionSteps: []string{
					"Valor inicial (b) = 10.",
					"Tasa de cambio (m) = -2 (porque pierde valor).",
					"Función: f(x) = -2x + 10.",
					"A los 5 años (x=5), f(5) = -2(5) + 10 = 0. La máquina no vale nada.",
				},
				GraphParams: map[string]float64{"m": -2, "b": 10},
			},
		},
		{
			ID:          "quadratic",
			Name:        "Cuadrática",
			Category:    Algebraic,
			Formula:     "f(x) = ax² + bx + c",
			Description: "Una parábola con un punto máximo o mínimo llamado vértice. Simétrica respecto a su eje.",
			Color:       "bg-blue-500",
			HexColor:    "#3b82f6",
			Params: []ParameterSpec{
				{ID: "a", Min: -3, Max: 3, Step: 0.1, Default: 1, Label: "Cuadrático (a)"},
				{ID: "b", Min: -5, Max: 5, Step: 0.5, Default: 0, Label: "Lineal (b)"},
				{ID: "c", Min: -5, Max: 5, Step: 0.5, Default: 0, Label: "Independiente (c)"},
			},
			Rule:    RuleFunc(quadratic),
			Display: renderQuadratic,
			Example: Example{
				Problem:  "Encuentra el vértice de f(x) = x² - 4x + 3.",
				Solution: "La coordenada x del vértice es -b/(2a) = -(-4)/2 = 2. Luego f(2) = 2² - 4(2) + 3 = -1. Vértice: (2, -1).",
			},
			Quiz: Quiz{
				Question:      `Si "a" es negativo en f(x) = ax² + bx + c, ¿hacia dónde abre la parábola?`,
				Options:       []string{"Hacia arriba", "Hacia abajo", "Hacia la derecha", "Hacia la izquierda"},
				CorrectAnswer: 1,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Lanzamiento de Proyectil",
				Description: "La altura de una pelota está dada por h(t) = -t² + 4t, donde t es el tiempo en segundos. ¿Cuál es la altura máxima?",
				Steps: []string{
					"Identificamos a = -1, b = 4, c = 0.",
					"El tiempo del vértice es t = -b/(2a) = -4/(2*-1) = 2 segundos.",
					"La altura máxima es h(2) = -(2)² + 4(2) = -4 + 8 = 4 metros.",
					"El vértice es (2, 4).",
				},
				GraphParams: map[string]float64{"a": -1, "b": 4, "c": 0},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Área Máxima",
				Description: "Se quiere cercar un jardín rectangular con 12m de valla usando una pared existente. El área es A(x) = x(12 - 2x) = -2x² + 12x. Encuentra el área máxima.",
				SolutionSteps: []string{
					"Función: f(x) = -2x² + 12x.",
					"Vértice x = -12 / (2 * -2) = 3.",
					"Área máxima f(3) = -2(3)² + 12(3) = -18 + 36 = 18 m².",
				},
				GraphParams: map[string]float64{"a": -2, "b": 12, "c": 0},
			},
		},
		{
			ID:          "cubic",
			Name:        "Cúbica",
			Category:    Algebraic,
			Formula:     "f(x) = ax³ + bx² + cx + d",
			Description: `Polinomio de grado 3. Tiene forma de "S" y puede tener hasta dos puntos de cambio de concavidad.`,
			Color:       "bg-indigo-500",
			HexColor:    "#6366f1",
			Params: []ParameterSpec{
				{ID: "a", Min: -2, Max: 2, Step: 0.1, Default: 1, Label: "Cúbico (a)"},
				{ID: "b", Min: -3, Max: 3, Step: 0.5, Default: 0, Label: "Cuadrático (b)"},
				{ID: "c", Min: -3, Max: 3, Step: 0.5, Default: 0, Label: "Lineal (c)"},
				{ID: "d", Min: -3, Max: 3, Step: 0.5, Default: 0, Label: "Independiente (d)"},
			},
			Rule:    RuleFunc(cubic),
			Display: renderCubic,
			Example: Example{
				Problem:  "Evalúa f(x) = x³ - 2 en x = 2.",
				Solution: "f(2) = 2³ - 2 = 8 - 2 = 6.",
			},
			Quiz: Quiz{
				Question:      "¿Cuál es el dominio de una función cúbica polinómica estándar?",
				Options:       []string{"Solo números positivos", "Solo números negativos", "Todos los números reales", "Entre -1 y 1"},
				CorrectAnswer: 2,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Volumen de una Caja",
				Description: "El volumen de una caja variable está dado por V(x) = x³ - 4x. Analiza sus raíces.",
				Steps: []string{
					"Factorizamos: x(x² - 4) = x(x-2)(x+2).",
					"Las raíces son x = 0, x = 2, x = -2.",
					"La gráfica corta el eje X en estos tres puntos.",
					"Nota: En un contexto físico, solo x > 2 tendría sentido positivo para volumen si x es una dimensión ajustada.",
				},
				GraphParams: map[string]float64{"a": 1, "b": 0, "c": -4, "d": 0},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Punto de Inflexión",
				Description: "Dada f(x) = x³. Encuentra el comportamiento cerca de x=0.",
				SolutionSteps: []string{
					"La función es f(x) = x³.",
					"En x=0, f(0)=0.",
					"Para x<0, f(x) es negativo. Para x>0, f(x) es positivo.",
					"x=0 es un punto de inflexión donde cambia la concavidad.",
				},
				GraphParams: map[string]float64{"a": 1, "b": 0, "c": 0, "d": 0},
			},
		},
		{
			ID:          "radical",
			Name:        "Radical",
			Category:    Algebraic,
			Formula:     "f(x) = a√(x - h) + k",
			Description: "Función que involucra la raíz de la variable. Su dominio está restringido para raíces pares (x ≥ h).",
			Color:       "bg-emerald-500",
			HexColor:    "#10b981",
			Params: []ParameterSpec{
				{ID: "a", Min: 0.5, Max: 3, Step: 0.5, Default: 1, Label: "Escala (a)"},
				{ID: "h", Min: -5, Max: 5, Step: 1, Default: 0, Label: "Desplazamiento X (h)"},
				{ID: "k", Min: -3, Max: 3, Step: 1, Default: 0, Label: "Desplazamiento Y (k)"},
			},
			Rule:    RuleFunc(radical),
			Display: renderRadical,
			Example: Example{
				Problem:  "¿Cuál es el dominio de f(x) = √(x - 3)?",
				Solution: "El radicando debe ser mayor o igual a cero: x - 3 ≥ 0, por lo tanto x ≥ 3.",
			},
			Quiz: Quiz{
				Question:      "¿Por qué la función f(x) = √x no está definida para x = -4 en los números reales?",
				Options:       []string{"Porque es muy pequeño", "Porque no existen raíces cuadradas reales de números negativos", "Porque es cero", "Porque es impar"},
				CorrectAnswer: 1,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Velocidad de Caída",
				Description: "La velocidad de un objeto que cae es v(d) = √(19.6d), donde d es la distancia. Calcula v para d=5m.",
				Steps: []string{
					"Sustituimos d = 5 en la función.",
					"v(5) = √(19.6 * 5) = √98.",
					"v(5) ≈ 9.9 m/s.",
					"La gráfica comienza en (0,0) y crece curvándose hacia la derecha.",
				},
				// √19.6 ≈ 4.42, above the slider range on purpose
				GraphParams: map[string]float64{"a": 4.42, "h": 0, "k": 0},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Desplazamiento Radical",
				Description: "Grafica f(x) = √(x + 2) - 1. ¿Dónde comienza la gráfica?",
				SolutionSteps: []string{
					"El dominio es x + 2 ≥ 0 → x ≥ -2.",
					"El punto de inicio es (-2, -1).",
					"Para x = 2: f(2) = √(4) - 1 = 2 - 1 = 1. Pasa por (2, 1).",
				},
				GraphParams: map[string]float64{"a": 1, "h": -2, "k": -1},
			},
		},
		{
			ID:          "exponential",
			Name:        "Exponencial",
			Category:    Transcendental,
			Formula:     "f(x) = a · b^x",
			Description: "La variable está en el exponente. Modela crecimiento (b > 1) o decrecimiento (0 < b < 1) rápido.",
			Color:       "bg-red-500",
			HexColor:    "#ef4444",
			Params: []ParameterSpec{
				{ID: "a", Min: 0.5, Max: 3, Step: 0.5, Default: 1, Label: "Escala (a)"},
				{ID: "b", Min: 0.1, Max: 4, Step: 0.1, Default: 2, Label: "Base (b)"},
			},
			Rule:    RuleFunc(exponential),
			Display: renderExponential,
			Example: Example{
				Problem:  "Si una bacteria se duplica cada hora (f(x) = 2^x), ¿cuántas habrá en 3 horas?",
				Solution: "f(3) = 2³ = 8 bacterias.",
			},
			Quiz: Quiz{
				Question:      "¿Qué pasa con f(x) = 2^x cuando x tiende a infinito?",
				Options:       []string{"Se acerca a 0", "Se acerca a 1", "Crece indefinidamente", "Oscila"},
				CorrectAnswer: 2,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Interés Compuesto",
				Description: "Una inversión crece según A(t) = 1 · (1.5)^t. ¿Cuánto vale en t=2?",
				Steps: []string{
					"Base b = 1.5 (crecimiento del 50%).",
					"Evaluamos en t = 2.",
					"A(2) = 1 · (1.5)² = 2.25.",
					"La gráfica pasa por (0,1) y sube rápidamente.",
				},
				GraphParams: map[string]float64{"a": 1, "b": 1.5},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Decaimiento Radiactivo",
				Description: "Una sustancia se reduce a la mitad cada periodo: f(x) = (0.5)^x. ¿Qué valor tiene en x=2?",
				SolutionSteps: []string{
					"Base b = 0.5 (0 < b < 1, es decreciente).",
					"f(2) = (0.5)² = 0.25.",
					"La gráfica baja acercándose a 0 pero nunca lo toca (asíntota horizontal).",
				},
				GraphParams: map[string]float64{"a": 1, "b": 0.5},
			},
		},
		{
			ID:          "logarithmic",
			Name:        "Logarítmica",
			Category:    Transcendental,
			Formula:     "f(x) = log_b(x)",
			Description: "Inversa de la función exponencial. Crece muy lentamente. Solo definida para x > 0.",
			Color:       "bg-teal-500",
			HexColor:    "#14b8a6",
			Params: []ParameterSpec{
				{ID: "b", Min: 2, Max: 10, Step: 1, Default: 2, Label: "Base (b)"},
			},
			Rule:    RuleFunc(logarithmic),
			Display: renderLogarithmic,
			Example: Example{
				Problem:  "Calcula log₂(8).",
				Solution: "Buscamos a qué exponente elevar 2 para obtener 8. 2³ = 8, así que log₂(8) = 3.",
			},
			Quiz: Quiz{
				Question:      "¿Cuál es el valor de log(1) en cualquier base?",
				Options:       []string{"1", "0", "Infinito", "La base"},
				CorrectAnswer: 1,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Escala Richter",
				Description: "La magnitud de un sismo se relaciona logarítmicamente con su energía. Si f(x) = log₁₀(x), halla f(100).",
				Steps: []string{
					"Usamos base b = 10.",
					"Evaluamos x = 100.",
					"f(100) = log₁₀(100) = 2, porque 10² = 100.",
					"La gráfica pasa por (1,0) y (10,1).",
				},
				GraphParams: map[string]float64{"b": 10},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Dominio Logarítmico",
				Description: "Para f(x) = log₂(x), ¿qué sucede si intentas evaluar x = 0 o x = -1?",
				SolutionSteps: []string{
					"El logaritmo no está definido para números no positivos.",
					"La gráfica tiene una asíntota vertical en x = 0.",
					"Solo existe gráfica a la derecha del eje Y.",
				},
				GraphParams: map[string]float64{"b": 2},
			},
		},
		{
			ID:          "trigonometric",
			Name:        "Trigonométrica",
			Category:    Transcendental,
			Formula:     "f(x) = A · func(B · x)",
			Description: "Funciones periódicas que modelan ondas y oscilaciones. Incluye Seno, Coseno, Tangente y sus inversas.",
			Color:       "bg-yellow-500",
			HexColor:    "#eab308",
			Params: []ParameterSpec{
				{ID: "A", Min: 0.5, Max: 3, Step: 0.5, Default: 1, Label: "Amplitud (A)"},
				{ID: "B", Min: 0.5, Max: 3, Step: 0.5, Default: 1, Label: "Frecuencia (B)"},
			},
			Variants: []Variant{
				{ID: "sin", Name: "Seno", Formula: "sin(Bx)", Rule: trigSin},
				{ID: "cos", Name: "Coseno", Formula: "cos(Bx)", Rule: trigCos},
				{ID: "tan", Name: "Tangente", Formula: "tan(Bx)", Rule: trigTan},
				{ID: "cot", Name: "Cotangente", Formula: "cot(Bx)", Rule: trigCot},
				{ID: "sec", Name: "Secante", Formula: "sec(Bx)", Rule: trigSec},
				{ID: "csc", Name: "Cosecante", Formula: "csc(Bx)", Rule: trigCsc},
				{ID: "asin", Name: "ArcSeno", Formula: "arcsin(x)", Rule: trigAsin},
				{ID: "acos", Name: "ArcCoseno", Formula: "arccos(x)", Rule: trigAcos},
				{ID: "atan", Name: "ArcTangente", Formula: "arctan(x)", Rule: trigAtan},
			},
			// without a variant the family plots the sine
			Rule:    trigSin,
			Display: renderTrigonometric,
			Example: Example{
				Problem:  "¿Cuál es el valor máximo de f(x) = 3sin(x)?",
				Solution: "El seno oscila entre -1 y 1. Multiplicado por 3, oscila entre -3 y 3. El máximo es 3.",
			},
			Quiz: Quiz{
				Question:      "¿Cuál es el periodo de la función f(x) = sin(x)?",
				Options:       []string{"π", "2π", "π/2", "1"},
				CorrectAnswer: 1,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Onda Sonora",
				Description: "Una onda de sonido se modela con y = 2sin(x). Grafica un ciclo.",
				Steps: []string{
					"Amplitud A = 2. La onda sube hasta 2 y baja hasta -2.",
					"Periodo = 2π ≈ 6.28.",
					"Comienza en (0,0), sube al máximo en π/2, cruza en π, baja al mínimo en 3π/2.",
					"Termina el ciclo en 2π.",
				},
				GraphParams: map[string]float64{"A": 2, "B": 1},
				VariantID:   "sin",
			},
			ProposedProblem: ProposedProblem{
				Title:       "Función Coseno",
				Description: "Grafica y = cos(x). ¿En qué se diferencia del seno?",
				SolutionSteps: []string{
					"El coseno comienza en su máximo (0, 1), no en (0,0).",
					"Tiene la misma forma de onda pero desplazada π/2 a la izquierda.",
					"Corta el eje X en π/2 y 3π/2.",
				},
				GraphParams: map[string]float64{"A": 1, "B": 1},
				VariantID:   "cos",
			},
		},
		{
			ID:          "piecewise",
			Name:        "A Trozos",
			Category:    Transcendental,
			Formula:     "f(x) = { x < 0: x + a ; x ≥ 0: x² + b }",
			Description: "Definida por diferentes fórmulas según el intervalo del dominio. En este ejemplo: lineal para x < 0 y cuadrática para x ≥ 0.",
			Color:       "bg-pink-500",
			HexColor:    "#ec4899",
			Params: []ParameterSpec{
				{ID: "a", Min: -3, Max: 3, Step: 1, Default: 0, Label: "Desplazamiento Lineal (a)"},
				{ID: "b", Min: -3, Max: 3, Step: 1, Default: 0, Label: "Desplazamiento Cuadrático (b)"},
			},
			Rule:    RuleFunc(piecewise),
			Display: renderPiecewise,
			Example: Example{
				Problem:  "Si f(x) = { 2x si x<0; x+1 si x≥0 }, halla f(-2) y f(2).",
				Solution: "Para x=-2 (x<0): 2(-2) = -4. Para x=2 (x≥0): 2+1 = 3.",
			},
			Quiz: Quiz{
				Question:      "¿Es siempre continua una función a trozos?",
				Options:       []string{"Sí, siempre", "No, puede tener saltos", "Solo si es lineal", "Nunca es continua"},
				CorrectAnswer: 1,
			},
			SolvedProblem: SolvedProblem{
				Title:       "Valor Absoluto",
				Description: "La función valor absoluto f(x) = |x| es una función a trozos: -x si x<0, x si x≥0.",
				Steps: []string{
					"Para x = -2, f(-2) = -(-2) = 2.",
					"Para x = 2, f(2) = 2.",
					`La gráfica forma una "V" con vértice en el origen.`,
					"En nuestro simulador, ajusta a=0 y b=0, pero nota que la parte derecha es x² (parábola), no x lineal.",
				},
				GraphParams: map[string]float64{"a": 0, "b": 0},
			},
			ProposedProblem: ProposedProblem{
				Title:       "Salto Discontinuo",
				Description: "Configura a = 2 y b = -1. ¿Qué pasa en x = 0?",
				SolutionSteps: []string{
					"Límite por izquierda (x→0⁻): 0 + 2 = 2.",
					"Límite por derecha (x→0⁺): 0² - 1 = -1.",
					"Hay un salto de 2 a -1. La función no es continua en x=0.",
				},
				GraphParams: map[string]float64{"a": 2, "b": -1},
			},
		},
	}
}
