package menu

// Messages holds every user-facing string of the menu. Fields marked with
// a verb are format strings:
//
//	Welcome       %s = app name
//	InvalidToken  %s = rejected token
//	Result        %s = formatted result
//
// The JSON tags are the keys accepted by the "messages" object of the
// config file (see internal/config).
type Messages struct {
	AppName        string `json:"appName"`
	Welcome        string `json:"welcome"`
	Menu           string `json:"menu"`
	FirstNumber    string `json:"firstNumber"`
	SecondNumber   string `json:"secondNumber"`
	Dividend       string `json:"dividend"`
	Divisor        string `json:"divisor"`
	Base           string `json:"base"`
	Exponent       string `json:"exponent"`
	NumberList     string `json:"numberList"`
	InvalidNumber  string `json:"invalidNumber"`
	InvalidToken   string `json:"invalidToken"`
	NoValidNumbers string `json:"noValidNumbers"`
	DivisionByZero string `json:"divisionByZero"`
	Result         string `json:"result"`
	InvalidOption  string `json:"invalidOption"`
	Cancelled      string `json:"cancelled"`
	Farewell       string `json:"farewell"`
}

// DefaultMessages returns the stock Spanish strings.
func DefaultMessages() Messages {
	return Messages{
		AppName: "Calculadora Día 22",
		Welcome: "Bienvenido a %s",
		Menu: `Elige una operación:
1) Sumar
2) Restar
3) Multiplicar
4) Dividir
5) Potencia
6) Promedio (N números)
0) Salir`,
		FirstNumber:    "Ingresa el primer número:",
		SecondNumber:   "Ingresa el segundo número:",
		Dividend:       "Ingresa el dividendo:",
		Divisor:        "Ingresa el divisor:",
		Base:           "Ingresa la base:",
		Exponent:       "Ingresa el exponente (por defecto 2):",
		NumberList:     "Ingresa números separados por coma, ej: 10,20,30",
		InvalidNumber:  "❌ Valor no numérico. Intenta de nuevo.",
		InvalidToken:   `❌ "%s" no es un número válido.`,
		NoValidNumbers: "❌ No se ingresaron números válidos.",
		DivisionByZero: "❌ No se puede dividir entre cero",
		Result:         "Resultado: %s",
		InvalidOption:  "Opción inválida. Elige 0–6.",
		Cancelled:      "Saliendo…",
		Farewell:       "¡Gracias por usar la calculadora!",
	}
}

// Merge returns m with every empty field filled from fallback.
func (m Messages) Merge(fallback Messages) Messages {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&m.AppName, fallback.AppName)
	fill(&m.Welcome, fallback.Welcome)
	fill(&m.Menu, fallback.Menu)
	fill(&m.FirstNumber, fallback.FirstNumber)
	fill(&m.SecondNumber, fallback.SecondNumber)
	fill(&m.Dividend, fallback.Dividend)
	fill(&m.Divisor, fallback.Divisor)
	fill(&m.Base, fallback.Base)
	fill(&m.Exponent, fallback.Exponent)
	fill(&m.NumberList, fallback.NumberList)
	fill(&m.InvalidNumber, fallback.InvalidNumber)
	fill(&m.InvalidToken, fallback.InvalidToken)
	fill(&m.NoValidNumbers, fallback.NoValidNumbers)
	fill(&m.DivisionByZero, fallback.DivisionByZero)
	fill(&m.Result, fallback.Result)
	fill(&m.InvalidOption, fallback.InvalidOption)
	fill(&m.Cancelled, fallback.Cancelled)
	fill(&m.Farewell, fallback.Farewell)
	return m
}
