package connstr

import (
	"regexp"
	"strings"
)

// Family names the connection string flavour a shape pattern recognises.
type Family string

const (
	FamilyNone       Family = ""
	FamilySQLServer  Family = "sqlserver"
	FamilyPostgreSQL Family = "postgresql"
	FamilyMySQL      Family = "mysql"
	FamilyMongoDB    Family = "mongodb"
	FamilyOracle     Family = "oracle"
	FamilyJDBC       Family = "jdbc"
	FamilySQLite     Family = "sqlite"
	FamilyRedis      Family = "redis"
	FamilyGeneric    Family = "generic"
)

// space is what browsers mean by \s: ASCII whitespace plus \v, the Unicode
// space separators (no-break space included), line and paragraph separators
// and the byte order mark. RE2's \s covers ASCII only.
const space = `[\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// compile widens every \s in expr to space.
func compile(expr string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(expr, `\s`, space))
}

type shape struct {
	family Family
	re     *regexp.Regexp
}

// shapes are evaluated in order; the first hit decides the family.
var shapes = []shape{
	{FamilySQLServer, compile(`(?i)^(Server|Data Source|DataSource)\s*=.+`)},
	{FamilySQLServer, compile(`(?i)^.*Initial Catalog\s*=.+`)},
	{FamilySQLServer, compile(`(?i)^.*Database\s*=.+`)},

	{FamilyPostgreSQL, compile(`(?i)^postgresql://.+`)},
	{FamilyPostgreSQL, compile(`(?i)^postgres://.+`)},
	{FamilyPostgreSQL, compile(`(?i)^Host\s*=.+`)},

	{FamilyMySQL, compile(`(?i)^mysql://.+`)},
	{FamilyMySQL, compile(`(?i)^.*server\s*=.+`)},

	{FamilyMongoDB, compile(`(?i)^mongodb(\+srv)?://.+`)},

	{FamilyOracle, compile(`(?i)^.*TNS_ADMIN\s*=.+`)},
	{FamilyOracle, compile(`(?i)^.*SERVICE_NAME\s*=.+`)},

	{FamilyJDBC, compile(`(?i)^jdbc:.+`)},

	{FamilySQLite, compile(`(?i)^.*\.db$`)},
	{FamilySQLite, compile(`(?i)^.*\.sqlite$`)},
	{FamilySQLite, compile(`(?i)^.*Data Source\s*=.*\.db`)},

	{FamilyRedis, compile(`(?i)^redis://.+`)},

	// ODBC-style and anything else shaped like k=v;k=v
	{FamilyGeneric, compile(`^.*=.*;.*=.*`)},
}

// sensitiveRe captures the key so the replacement can keep its spelling.
var sensitiveRe = compile(`(?i)(password|pwd|token|secret|key)\s*=\s*[^;]+`)
