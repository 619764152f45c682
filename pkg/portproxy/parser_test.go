package portproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishListing = `
Listen on ipv4:             Connect to ipv4:

Address         Port        Address         Port
--------------- ----------  --------------- ----------
0.0.0.0         8080        172.29.223.44   1996
192.168.1.10    443         172.29.223.44   8443
`

func TestParseTableEmpty(t *testing.T) {
	assert.Empty(t, ParseTable(""))
	assert.Empty(t, ParseTable("\n\n"))
}

func TestParseTableHeaderOnly(t *testing.T) {
	input := "Listen on ipv4:             Connect to ipv4:\n\nAddress         Port\n--------------- ----------\n"
	assert.Empty(t, ParseTable(input))
}

func TestParseTableNoSeparator(t *testing.T) {
	// Without the dash separator nothing counts as a data row.
	input := "0.0.0.0         8080        172.29.223.44   1996\n"
	assert.Empty(t, ParseTable(input))
}

func TestParseTableSingleRow(t *testing.T) {
	input := "header\n--------------- ----------\n0.0.0.0   8080   172.29.223.44   1996\n"
	rules := ParseTable(input)
	require.Len(t, rules, 1)
	assert.Equal(t, Rule{
		ListenAddress:  "0.0.0.0",
		ListenPort:     "8080",
		ConnectAddress: "172.29.223.44",
		ConnectPort:    "1996",
	}, rules[0])
}

func TestParseTablePreservesOrder(t *testing.T) {
	rules := ParseTable(englishListing)
	require.Len(t, rules, 2)
	assert.Equal(t, "8080", rules[0].ListenPort)
	assert.Equal(t, "443", rules[1].ListenPort)
	assert.Equal(t, "8443", rules[1].ConnectPort)
}

func TestParseTableLocalizedHeader(t *testing.T) {
	// Chinese-locale netsh wording; only the separator matters.
	input := "侦听 ipv4:                 连接到 ipv4:\n\n地址            端口        地址            端口\n--------------- ----------  --------------- ----------\n0.0.0.0         8080        172.29.223.44   1996\n"
	rules := ParseTable(input)
	require.Len(t, rules, 1)
	assert.Equal(t, "172.29.223.44", rules[0].ConnectAddress)
}

func TestParseTableWhitespaceDrift(t *testing.T) {
	input := "----\n   0.0.0.0\t 8080 \t172.29.223.44     1996   \n"
	rules := ParseTable(input)
	require.Len(t, rules, 1)
	assert.Equal(t, "0.0.0.0", rules[0].ListenAddress)
	assert.Equal(t, "1996", rules[0].ConnectPort)
}

func TestParseTableFallbackExtraColumns(t *testing.T) {
	// Five columns fail the strict pattern but parse via the token
	// fallback since columns 2 and 4 are numeric.
	input := "----\n0.0.0.0   8080   172.29.223.44   1996   extra\n"
	rules := ParseTable(input)
	require.Len(t, rules, 1)
	assert.Equal(t, Rule{
		ListenAddress:  "0.0.0.0",
		ListenPort:     "8080",
		ConnectAddress: "172.29.223.44",
		ConnectPort:    "1996",
	}, rules[0])
}

func TestParseTableSkipsMalformedRows(t *testing.T) {
	input := "----\n" +
		"0.0.0.0   8080   172.29.223.44   1996\n" +
		"this is a footer line\n" +
		"0.0.0.0   abc    172.29.223.44   1996\n" +
		"\n" +
		"0.0.0.0   9090   172.29.223.44   9090\n"
	rules := ParseTable(input)
	require.Len(t, rules, 2)
	assert.Equal(t, "8080", rules[0].ListenPort)
	assert.Equal(t, "9090", rules[1].ListenPort)
}

func TestParseTableNoDeduplication(t *testing.T) {
	input := "----\n" +
		"0.0.0.0   8080   172.29.223.44   1996\n" +
		"0.0.0.0   8080   172.29.223.44   1996\n"
	assert.Len(t, ParseTable(input), 2)
}

func TestParseTableCRLF(t *testing.T) {
	input := "header\r\n--------------- ----------\r\n0.0.0.0   8080   172.29.223.44   1996\r\n"
	rules := ParseTable(input)
	require.Len(t, rules, 1)
	assert.Equal(t, "1996", rules[0].ConnectPort)
}

func TestRuleString(t *testing.T) {
	r := Rule{ListenAddress: "0.0.0.0", ListenPort: "8080", ConnectAddress: "172.29.223.44", ConnectPort: "1996"}
	assert.Equal(t, "0.0.0.0:8080 -> 172.29.223.44:1996", r.String())
}
