package permissions

var Parse = parse
