package tls13

import "strconv"

// Alert is a TLS alert description code (RFC 8446 section 6).
type Alert uint8

const (
	AlertCloseNotify          Alert = 0
	AlertUnexpectedMessage    Alert = 10
	AlertBadRecordMAC         Alert = 20
	AlertRecordOverflow       Alert = 22
	AlertHandshakeFailure     Alert = 40
	AlertBadCertificate       Alert = 42
	AlertCertificateExpired   Alert = 45
	AlertCertificateUnknown   Alert = 46
	AlertIllegalParameter     Alert = 47
	AlertUnknownCA            Alert = 48
	AlertDecodeError          Alert = 50
	AlertDecryptError         Alert = 51
	AlertProtocolVersion      Alert = 70
	AlertInsufficientSecurity Alert = 71
	AlertInternalError        Alert = 80
	AlertMissingExtension     Alert = 109
	AlertUnsupportedExtension Alert = 110
	AlertUnrecognizedName     Alert = 112
	AlertCertificateRequired  Alert = 116
)

var alertNames = map[Alert]string{
	AlertCloseNotify:          "close_notify",
	AlertUnexpectedMessage:    "unexpected_message",
	AlertBadRecordMAC:         "bad_record_mac",
	AlertRecordOverflow:       "record_overflow",
	AlertHandshakeFailure:     "handshake_failure",
	AlertBadCertificate:       "bad_certificate",
	AlertCertificateExpired:   "certificate_expired",
	AlertCertificateUnknown:   "certificate_unknown",
	AlertIllegalParameter:     "illegal_parameter",
	AlertUnknownCA:            "unknown_ca",
	AlertDecodeError:          "decode_error",
	AlertDecryptError:         "decrypt_error",
	AlertProtocolVersion:      "protocol_version",
	AlertInsufficientSecurity: "insufficient_security",
	AlertInternalError:        "internal_error",
	AlertMissingExtension:     "missing_extension",
	AlertUnsupportedExtension: "unsupported_extension",
	AlertUnrecognizedName:     "unrecognized_name",
	AlertCertificateRequired:  "certificate_required",
}

func (a Alert) String() string {
	if name, ok := alertNames[a]; ok {
		return name
	}
	return "alert(" + strconv.Itoa(int(a)) + ")"
}
