package billing

// Supported invoice template languages.
const (
	LangEnglish = "en"
	LangSinhala = "si"
	LangTamil   = "ta"
)

// Labels are the static template strings on a rendered invoice. Only
// these labels are translated; user-supplied text is never touched.
type Labels struct {
	Invoice   string
	Date      string
	Due       string
	BilledTo  string
	Desc      string
	Qty       string
	UnitPrice string
	Amount    string
	Subtotal  string
	Tax       string // rendered as "<Tax> (N%)"
	Discount  string
	Total     string
	Notes     string
	Footer    string
}

var labelSets = map[string]Labels{
	LangEnglish: {
		Invoice:   "INVOICE",
		Date:      "Date",
		Due:       "Due",
		BilledTo:  "Billed To",
		Desc:      "Description",
		Qty:       "Qty",
		UnitPrice: "Unit Price",
		Amount:    "Amount",
		Subtotal:  "Subtotal",
		Tax:       "Tax",
		Discount:  "Discount",
		Total:     "Total",
		Notes:     "Notes & Terms",
		Footer:    "Generated with EcoBill — helping Sri Lanka go paperless",
	},
	LangSinhala: {
		Invoice:   "ඉන්වොයිසිය",
		Date:      "දිනය",
		Due:       "ගෙවිය යුතු දිනය",
		BilledTo:  "බිල්පත ලබන්නා",
		Desc:      "විස්තරය",
		Qty:       "ප්‍රමාණය",
		UnitPrice: "ඒකක මිල",
		Amount:    "මුදල",
		Subtotal:  "උප එකතුව",
		Tax:       "බදු",
		Discount:  "වට්ටම",
		Total:     "එකතුව",
		Notes:     "සටහන් සහ කොන්දේසි",
		Footer:    "EcoBill සමඟ සාදන ලදී",
	},
	LangTamil: {
		Invoice:   "விலைப்பட்டியல்",
		Date:      "தேதி",
		Due:       "நிலுவைத் தேதி",
		BilledTo:  "பில் பெறுநர்",
		Desc:      "விவரம்",
		Qty:       "அளவு",
		UnitPrice: "அலகு விலை",
		Amount:    "தொகை",
		Subtotal:  "கூட்டுத்தொகை",
		Tax:       "வரி",
		Discount:  "தள்ளுபடி",
		Total:     "மொத்தம்",
		Notes:     "குறிப்புகள்",
		Footer:    "EcoBill மூலம் உருவாக்கப்பட்டது",
	},
}

// LabelsFor returns the label set for a language code, falling back
// to English for anything unrecognised.
func LabelsFor(lang string) Labels {
	if l, ok := labelSets[lang]; ok {
		return l
	}
	return labelSets[LangEnglish]
}
