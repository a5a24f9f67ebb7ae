package rod

var RenderError = renderError
