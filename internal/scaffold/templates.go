package scaffold

// Razor view templates. Rendered with text/template on purpose:
// html/template's contextual escaping would mangle the @Model
// expressions Razor needs verbatim.

const createTemplate = `@model {{.TypeName}}

@{
    ViewBag.Title = "Create";
}

<h2>Create {{.ClassName}}</h2>

@using (Html.BeginForm())
{
    @Html.AntiForgeryToken()
    <div class="form-horizontal">
        <hr />
        @Html.ValidationSummary(true, "", new { @class = "text-danger" })
{{- range .FormProperties}}
        <div class="form-group">
            {{label .}}
            <div class="col-md-10">
                {{input .}}
                @Html.ValidationMessage("{{.Name}}", "", new { @class = "text-danger" })
            </div>
        </div>
{{- end}}
        <div class="form-group">
            <div class="col-md-offset-2 col-md-10">
                <input type="submit" value="Create" class="btn btn-primary" />
            </div>
        </div>
    </div>
}

<div>
    @Html.ActionLink("Back to List", "Index")
</div>
`

const editTemplate = `@model {{.TypeName}}

@{
    ViewBag.Title = "Edit";
}

<h2>Edit {{.ClassName}}</h2>

@using (Html.BeginForm())
{
    @Html.AntiForgeryToken()
    <div class="form-horizontal">
        <hr />
        @Html.ValidationSummary(true, "", new { @class = "text-danger" })
{{- with .PrimaryKey}}
        @Html.HiddenFor(model => model.{{.Name}})
{{- end}}
{{- range .FormProperties}}
        <div class="form-group">
            {{label .}}
            <div class="col-md-10">
                {{input .}}
                @Html.ValidationMessage("{{.Name}}", "", new { @class = "text-danger" })
            </div>
        </div>
{{- end}}
        <div class="form-group">
            <div class="col-md-offset-2 col-md-10">
                <input type="submit" value="Save" class="btn btn-primary" />
            </div>
        </div>
    </div>
}

<div>
    @Html.ActionLink("Back to List", "Index")
</div>
`

const detailsTemplate = `@model {{.TypeName}}

@{
    ViewBag.Title = "Details";
}

<h2>{{.ClassName}} Details</h2>

<div>
    <hr />
    <dl class="dl-horizontal">
{{- range .Properties}}
        <dt>{{.Label}}</dt>
        <dd>@Html.DisplayFor(model => model.{{.Name}})</dd>
{{- end}}
    </dl>
</div>

<p>
{{- with .PrimaryKey}}
    @Html.ActionLink("Edit", "Edit", new { id = Model.{{.Name}} }) |
{{- end}}
    @Html.ActionLink("Back to List", "Index")
</p>
`

const deleteTemplate = `@model {{.TypeName}}

@{
    ViewBag.Title = "Delete";
}

<h2>Delete {{.ClassName}}</h2>

<h3>Are you sure you want to delete this?</h3>

<div>
    <hr />
    <dl class="dl-horizontal">
{{- range .Properties}}
        <dt>{{.Label}}</dt>
        <dd>@Html.DisplayFor(model => model.{{.Name}})</dd>
{{- end}}
    </dl>

    @using (Html.BeginForm())
    {
        @Html.AntiForgeryToken()
        <div class="form-actions no-color">
            <input type="submit" value="Delete" class="btn btn-danger" />
            @Html.ActionLink("Back to List", "Index")
        </div>
    }
</div>
`

const indexTemplate = `@model IEnumerable<{{.TypeName}}>

@{
    ViewBag.Title = "{{.ClassName}} List";
}

<h2>{{.ClassName}} List</h2>

<p>
    @Html.ActionLink("Create New", "Create")
</p>

<table class="table">
    <tr>
{{- range .Properties}}
        <th>{{.Label}}</th>
{{- end}}
        <th></th>
    </tr>

@foreach (var item in Model)
{
    <tr>
{{- range .Properties}}
        <td>@Html.DisplayFor(modelItem => item.{{.Name}})</td>
{{- end}}
        <td>
{{- with .PrimaryKey}}
            @Html.ActionLink("Edit", "Edit", new { id = item.{{.Name}} }) |
            @Html.ActionLink("Details", "Details", new { id = item.{{.Name}} }) |
            @Html.ActionLink("Delete", "Delete", new { id = item.{{.Name}} })
{{- end}}
        </td>
    </tr>
}
</table>
`
