/*
Package config loads recordstore settings.

Sources, later ones winning:

  - built-in defaults (file backend, "file.json", log level "info")
  - an optional YAML file
  - environment variables, including those read from a .env file

Example YAML:

	backend: dynamodb
	log_level: debug
	dynamodb:
	  region: us-east-1
	  table: records
	  document: default

Environment variables: RECORDSTORE_BACKEND, RECORDSTORE_FILE,
RECORDSTORE_LOG_LEVEL, RECORDSTORE_DOCUMENT, AWS_REGION, AWS_DDB_TABLE,
AWS_ACCESS_KEY and AWS_SECRET_KEY.
*/
package config
