package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MailProviderSendgrid = "sendgrid"
	MailProviderLog      = "log"
)

const (
	DBDriverMySQL    = "mysql"
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// MinPasswordLength applies to password resets.
const MinPasswordLength = 6

// AllowedUploadExtensions mirrors what the portal accepts for submissions and profile images.
var AllowedUploadExtensions = []string{".jpeg", ".jpg", ".png", ".pdf", ".docx", ".txt"}
