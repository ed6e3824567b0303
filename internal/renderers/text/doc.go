// Package text provides a Renderer that turns HTML into wrapped plain text.
//
// Documents are parsed with the HTML5 algorithm, non-content elements
// (head, script, style, ...) are pruned, and the remaining tree is laid
// out line by line: blocks are separated by line breaks, emphasis becomes
// plain characters, list items get bullets or numbers and links become
// numbered references listed after the body.
package text
