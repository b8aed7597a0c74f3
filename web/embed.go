package web

import "embed"

// TemplatesFS 嵌入的页面模板
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS 嵌入的静态资源
//
//go:embed static/*
var StaticFS embed.FS
