package iso8583

// defaultFields follows ISO 8583:1987. Fields 1 and 65 are bitmap markers
// and have no entry. Binary lengths are in bytes.
var defaultFields = map[int]FieldMetadata{
	2:   {Type: TypeN, MaxLength: 19, LengthDigits: 2, Name: "Primary account number (PAN)"},
	3:   {Type: TypeN, MaxLength: 6, Name: "Processing code"},
	4:   {Type: TypeN, MaxLength: 12, Name: "Amount, transaction"},
	5:   {Type: TypeN, MaxLength: 12, Name: "Amount, settlement"},
	6:   {Type: TypeN, MaxLength: 12, Name: "Amount, cardholder billing"},
	7:   {Type: TypeN, MaxLength: 10, Name: "Transmission date & time"},
	8:   {Type: TypeN, MaxLength: 8, Name: "Amount, cardholder billing fee"},
	9:   {Type: TypeN, MaxLength: 8, Name: "Conversion rate, settlement"},
	10:  {Type: TypeN, MaxLength: 8, Name: "Conversion rate, cardholder billing"},
	11:  {Type: TypeN, MaxLength: 6, Name: "System trace audit number (STAN)"},
	12:  {Type: TypeN, MaxLength: 6, Name: "Time, local transaction"},
	13:  {Type: TypeN, MaxLength: 4, Name: "Date, local transaction"},
	14:  {Type: TypeN, MaxLength: 4, Name: "Date, expiration"},
	15:  {Type: TypeN, MaxLength: 4, Name: "Date, settlement"},
	16:  {Type: TypeN, MaxLength: 4, Name: "Date, conversion"},
	17:  {Type: TypeN, MaxLength: 4, Name: "Date, capture"},
	18:  {Type: TypeN, MaxLength: 4, Name: "Merchant type"},
	19:  {Type: TypeN, MaxLength: 3, Name: "Acquiring institution country code"},
	20:  {Type: TypeN, MaxLength: 3, Name: "PAN extended, country code"},
	21:  {Type: TypeN, MaxLength: 3, Name: "Forwarding institution. country code"},
	22:  {Type: TypeN, MaxLength: 3, Name: "Point of service entry mode"},
	23:  {Type: TypeN, MaxLength: 3, Name: "Application PAN sequence number"},
	24:  {Type: TypeN, MaxLength: 3, Name: "Network International identifier (NII)"},
	25:  {Type: TypeN, MaxLength: 2, Name: "Point of service condition code"},
	26:  {Type: TypeN, MaxLength: 2, Name: "Point of service capture code"},
	27:  {Type: TypeN, MaxLength: 1, Name: "Authorizing identification response length"},
	28:  {Type: TypeN, MaxLength: 9, Name: "Amount, transaction fee"},
	29:  {Type: TypeN, MaxLength: 9, Name: "Amount, settlement fee"},
	30:  {Type: TypeN, MaxLength: 9, Name: "Amount, transaction processing fee"},
	31:  {Type: TypeN, MaxLength: 9, Name: "Amount, settlement processing fee"},
	32:  {Type: TypeN, MaxLength: 11, LengthDigits: 2, Name: "Acquiring institution identification code"},
	33:  {Type: TypeN, MaxLength: 11, LengthDigits: 2, Name: "Forwarding institution identification code"},
	34:  {Type: TypeANS, MaxLength: 28, LengthDigits: 2, Name: "Primary account number, extended"},
	35:  {Type: TypeZ, MaxLength: 37, LengthDigits: 2, Name: "Track 2 data"},
	36:  {Type: TypeZ, MaxLength: 104, LengthDigits: 3, Name: "Track 3 data"},
	37:  {Type: TypeANS, MaxLength: 12, Name: "Retrieval reference number"},
	38:  {Type: TypeANS, MaxLength: 6, Name: "Authorization identification response"},
	39:  {Type: TypeANS, MaxLength: 2, Name: "Response code"},
	40:  {Type: TypeANS, MaxLength: 3, Name: "Service restriction code"},
	41:  {Type: TypeANS, MaxLength: 8, Name: "Card acceptor terminal identification"},
	42:  {Type: TypeANS, MaxLength: 15, Name: "Card acceptor identification code"},
	43:  {Type: TypeANS, MaxLength: 40, Name: "Card acceptor name/location"},
	44:  {Type: TypeANS, MaxLength: 25, LengthDigits: 2, Name: "Additional response data"},
	45:  {Type: TypeANS, MaxLength: 76, LengthDigits: 2, Name: "Track 1 data"},
	46:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Additional data - ISO"},
	47:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Additional data - national"},
	48:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Additional data - private"},
	49:  {Type: TypeANS, MaxLength: 3, Name: "Currency code, transaction"},
	50:  {Type: TypeANS, MaxLength: 3, Name: "Currency code, settlement"},
	51:  {Type: TypeANS, MaxLength: 3, Name: "Currency code, cardholder billing"},
	52:  {Type: TypeB, MaxLength: 8, Name: "Personal identification number data"},
	53:  {Type: TypeN, MaxLength: 16, Name: "Security related control information"},
	54:  {Type: TypeANS, MaxLength: 120, LengthDigits: 3, Name: "Additional amounts"},
	55:  {Type: TypeB, MaxLength: 999, LengthDigits: 3, Name: "ICC data (EMV)"},
	56:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved ISO"},
	57:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved national"},
	58:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved national"},
	59:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved private"},
	60:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved private"},
	61:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved private"},
	62:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved private"},
	63:  {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved private"},
	64:  {Type: TypeB, MaxLength: 8, Name: "Message authentication code"},
	66:  {Type: TypeN, MaxLength: 1, Name: "Settlement code"},
	67:  {Type: TypeN, MaxLength: 2, Name: "Extended payment code"},
	68:  {Type: TypeN, MaxLength: 3, Name: "Receiving institution country code"},
	69:  {Type: TypeN, MaxLength: 3, Name: "Settlement institution country code"},
	70:  {Type: TypeN, MaxLength: 3, Name: "Network management information code"},
	71:  {Type: TypeN, MaxLength: 4, Name: "Message number"},
	72:  {Type: TypeN, MaxLength: 4, Name: "Message number, last"},
	73:  {Type: TypeN, MaxLength: 6, Name: "Date, action"},
	74:  {Type: TypeN, MaxLength: 10, Name: "Credits, number"},
	75:  {Type: TypeN, MaxLength: 10, Name: "Credits, reversal number"},
	76:  {Type: TypeN, MaxLength: 10, Name: "Debits, number"},
	77:  {Type: TypeN, MaxLength: 10, Name: "Debits, reversal number"},
	78:  {Type: TypeN, MaxLength: 10, Name: "Transfer number"},
	79:  {Type: TypeN, MaxLength: 10, Name: "Transfer, reversal number"},
	80:  {Type: TypeN, MaxLength: 10, Name: "Inquiries number"},
	81:  {Type: TypeN, MaxLength: 10, Name: "Authorizations, number"},
	82:  {Type: TypeN, MaxLength: 12, Name: "Credits, processing fee amount"},
	83:  {Type: TypeN, MaxLength: 12, Name: "Credits, transaction fee amount"},
	84:  {Type: TypeN, MaxLength: 12, Name: "Debits, processing fee amount"},
	85:  {Type: TypeN, MaxLength: 12, Name: "Debits, transaction fee amount"},
	86:  {Type: TypeN, MaxLength: 16, Name: "Credits, amount"},
	87:  {Type: TypeN, MaxLength: 16, Name: "Credits, reversal amount"},
	88:  {Type: TypeN, MaxLength: 16, Name: "Debits, amount"},
	89:  {Type: TypeN, MaxLength: 16, Name: "Debits, reversal amount"},
	90:  {Type: TypeN, MaxLength: 42, Name: "Original data elements"},
	91:  {Type: TypeANS, MaxLength: 1, Name: "File update code"},
	92:  {Type: TypeANS, MaxLength: 2, Name: "File security code"},
	93:  {Type: TypeANS, MaxLength: 5, Name: "Response indicator"},
	94:  {Type: TypeANS, MaxLength: 7, Name: "Service indicator"},
	95:  {Type: TypeANS, MaxLength: 42, Name: "Replacement amounts"},
	96:  {Type: TypeB, MaxLength: 8, Name: "Message security code"},
	97:  {Type: TypeN, MaxLength: 16, Name: "Amount, net settlement"},
	98:  {Type: TypeANS, MaxLength: 25, Name: "Payee"},
	99:  {Type: TypeN, MaxLength: 11, LengthDigits: 2, Name: "Settlement institution identification code"},
	100: {Type: TypeN, MaxLength: 11, LengthDigits: 2, Name: "Receiving institution identification code"},
	101: {Type: TypeANS, MaxLength: 17, LengthDigits: 2, Name: "File name"},
	102: {Type: TypeANS, MaxLength: 28, LengthDigits: 2, Name: "Account identification 1"},
	103: {Type: TypeANS, MaxLength: 28, LengthDigits: 2, Name: "Account identification 2"},
	104: {Type: TypeANS, MaxLength: 100, LengthDigits: 3, Name: "Transaction description"},
	105: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	106: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	107: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	108: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	109: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	110: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	111: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for ISO use"},
	112: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	113: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	114: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	115: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	116: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	117: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	118: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	119: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for national use"},
	120: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	121: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	122: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	123: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	124: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	125: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	126: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	127: {Type: TypeANS, MaxLength: 999, LengthDigits: 3, Name: "Reserved for private use"},
	128: {Type: TypeB, MaxLength: 8, Name: "Message authentication code"},
}

// DefaultProtocol returns the ISO 8583:1987 field dictionary.
func DefaultProtocol() *Protocol {
	p, err := NewProtocol("ISO8583:1987", defaultFields)
	if err != nil {
		panic(err)
	}
	return p
}
