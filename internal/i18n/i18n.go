// Package i18n localizes guidance text and formats Indian rupee
// amounts. Supported languages are English, Hindi and Tamil; anything
// else falls back to English through the matcher.
package i18n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English, // en, fallback
	language.Hindi,   // hi
	language.Tamil,   // ta
}

var matcher = language.NewMatcher(supported)

// Match resolves a BCP 47 tag or a plain code like "hi" to a supported
// language, defaulting to English.
func Match(lang string) language.Tag {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return language.English
}

// securityGuidance holds security best practices per language, keyed by
// topic so callers can render a stable order.
var securityGuidance = map[language.Tag]map[string]string{
	language.English: {
		"password":       "Use strong passwords (minimum 12 characters with special characters)",
		"two_factor":     "Enable two-factor authentication for all accounts",
		"data_backup":    "Regular backups of financial data (daily/weekly)",
		"access_control": "Restrict access to sensitive financial data",
		"updates":        "Keep software and security patches updated",
		"antivirus":      "Maintain active antivirus and malware protection",
		"audit_trail":    "Enable and review audit logs regularly",
	},
	language.Hindi: {
		"password":       "मजबूत पासवर्ड का उपयोग करें (कम से कम 12 वर्ण विशेष वर्णों के साथ)",
		"two_factor":     "सभी खातों के लिए दो-कारक प्रमाणीकरण सक्षम करें",
		"data_backup":    "वित्तीय डेटा का नियमित बैकअप (दैनिक/साप्ताहिक)",
		"access_control": "संवेदनशील वित्तीय डेटा तक पहुंच प्रतिबंधित करें",
		"updates":        "सॉफ्टवेयर और सुरक्षा पैच को अपडेट रखें",
		"antivirus":      "सक्रिय एंटीवायरस और मैलवेयर सुरक्षा बनाए रखें",
		"audit_trail":    "ऑडिट लॉग नियमित रूप से सक्षम और समीक्षा करें",
	},
	language.Tamil: {
		"password":       "வலுவான கடவுச்சொற்களைப் பயன்படுத்தவும் (குறைந்தபட்சம் 12 எழுத்துக்கள் சிறப்பு எழுத்துக்களுடன்)",
		"two_factor":     "அனைத்து கணக்குகளுக்கும் இரண்டு-காரணி அங்கீகாரத்தை இயக்கவும்",
		"data_backup":    "நிதிய தரவுவின் வழக்கமான காப்பு (தினசரி/வாராந்திரம்)",
		"access_control": "உணர்திறன்மிக்க நிதிய தரவுக்கான அணுகலை கட்டுப்படுத்தவும்",
		"updates":        "மென்பொருள் மற்றும் பாதுகாப்பு திருத்தங்களை புதுப்பிக்கவும்",
		"antivirus":      "செயல்பட்ட ஆண்டிவைரஸ் மற்றும் தீங்கு விளைவிக்கும் மென்பொருள் பாதுகாப்பு பராமரிக்கவும்",
		"audit_trail":    "தணிக்கை பதிவுகளை வழக்கமாக இயக்கி மதிப்பாய்வு செய்யவும்",
	},
}

// securityTopics fixes rendering order.
var securityTopics = []string{
	"password", "two_factor", "data_backup", "access_control",
	"updates", "antivirus", "audit_trail",
}

// SecurityGuidance returns localized security best practices in a
// stable order.
func SecurityGuidance(lang string) []string {
	tag := Match(lang)
	table, ok := securityGuidance[tag]
	if !ok {
		table = securityGuidance[language.English]
	}
	out := make([]string, 0, len(securityTopics))
	for _, topic := range securityTopics {
		out = append(out, table[topic])
	}
	return out
}

// complianceGuidance holds tax and accounting compliance
// recommendations per language, keyed by topic.
var complianceGuidance = map[language.Tag]map[string]string{
	language.English: {
		"maintain_records":    "Maintain proper financial records and GST invoices for 6 years",
		"file_returns":        "File income tax returns and GST returns on time",
		"audit":               "Conduct statutory audit if required by law",
		"bank_reconciliation": "Perform monthly bank reconciliation",
		"invoice_audit":       "Keep duplicate copies of all invoices issued",
		"payroll":             "Maintain accurate payroll records and file employee tax returns",
	},
	language.Hindi: {
		"maintain_records":    "6 साल के लिए उचित वित्तीय रिकॉर्ड और GST इनवॉइस रखें",
		"file_returns":        "समय पर आयकर रिटर्न और GST रिटर्न दाखिल करें",
		"audit":               "कानून द्वारा आवश्यक होने पर वैधानिक लेखा परीक्षा करें",
		"bank_reconciliation": "मासिक बैंक समन्वय करें",
		"invoice_audit":       "जारी किए गए सभी इनवॉइस की डुप्लिकेट प्रतियां रखें",
		"payroll":             "सटीक पेरोल रिकॉर्ड रखें और कर्मचारी कर रिटर्न दाखिल करें",
	},
	language.Tamil: {
		"maintain_records":    "6 ஆண்டுகளுக்கு சரியான நிதிய பதிவுகள் மற்றும் GST இன்வாய்சுகளை வைத்திருங்கள்",
		"file_returns":        "சரியான நேரத்தில் வருமான வரி வருமானம் மற்றும் GST வருமானம் தாக்கல் செய்யவும்",
		"audit":               "சட்டத்தால் தேவைப்பட்டால் சட்டசபை தணிக்கை நடத்தவும்",
		"bank_reconciliation": "மாதாந்திர வங்கி சமநிலை செய்யவும்",
		"invoice_audit":       "வெளியிடப்பட்ட அனைத்து இன்வாய்சுகளின் நகல் பிரதிகளை வைத்திருங்கள்",
		"payroll":             "துல்லிய ஊதிய பதிவுகளைப் பராமரிக்கவும் மற்றும் ஊழியர் வரி வருமானம் தாக்கல் செய்யவும்",
	},
}

// complianceTopics fixes rendering order.
var complianceTopics = []string{
	"maintain_records", "file_returns", "audit",
	"bank_reconciliation", "invoice_audit", "payroll",
}

// ComplianceGuidance returns localized tax and accounting compliance
// recommendations in a stable order.
func ComplianceGuidance(lang string) []string {
	tag := Match(lang)
	table, ok := complianceGuidance[tag]
	if !ok {
		table = complianceGuidance[language.English]
	}
	out := make([]string, 0, len(complianceTopics))
	for _, topic := range complianceTopics {
		out = append(out, table[topic])
	}
	return out
}

// FormatINR renders an amount as Indian rupees with locale-aware
// digit grouping.
func FormatINR(lang string, amount float64) string {
	tag := Match(lang)
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(currency.INR.Amount(amount)))
}
