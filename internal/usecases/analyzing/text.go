package analyzing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultLocale = "es"

// texts gera as frases dos KPIs com números no formato do idioma
type texts struct {
	printer *message.Printer
}

func newTexts(locale string) texts {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return texts{printer: message.NewPrinter(tag)}
}

func (t texts) revenueDelta(delta float64) string {
	return t.printer.Sprintf("%+.1f%% respecto al periodo anterior", delta)
}

func (t texts) revenueValue(value float64) string {
	return t.printer.Sprintf("$%.2f este mes", value)
}

func (t texts) occupiedSpaces(occupied int) string {
	return t.printer.Sprintf("%d lugares ocupados", occupied)
}

func (t texts) occupancyPercentage(percentage int) string {
	return t.printer.Sprintf("%d%% de ocupación", percentage)
}

func (t texts) activeUsers(total int) string {
	return t.printer.Sprintf("%d usuarios activos", total)
}

func (t texts) registeredParkings(total int) string {
	if total == 1 {
		return "1 parking registrado"
	}
	return t.printer.Sprintf("%d parkings registrados", total)
}
