package model

// Tables AutoMigrate 顺序，被引用的表在前
var Tables = []any{
	&User{},
	&GoogleSheet{},
	&PlatformConnection{},
	&Workflow{},
	&Post{},
	&Activity{},
}
