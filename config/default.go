package config

// DefaultConfigYAML 嵌入的默认配置，可被外部 config.yaml 或环境变量覆盖
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: ""
  dbname: "incomebook"
  charset: "utf8mb4"

jwt:
  secret: "incomebook-dev-secret-change-me"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 465
  username: ""
  password: ""
  from: "收入记账"

app:
  currency: "CNY - ¥"
`)
